package mazeapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-maze/api/identity"
	"github.com/beka-birhanu/vinom-maze/api/respond"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController serves generation, lookup and solving routes.
type MazeController struct {
	mazes  i.MazeManager
	logger i.Logger
}

// NewMazeController initializes a MazeController.
func NewMazeController(mm i.MazeManager, logger i.Logger) (*MazeController, error) {
	if mm == nil {
		return nil, errors.New("maze manager is required")
	}
	return &MazeController{
		mazes:  mm,
		logger: logger,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:ID", mc.byID)
		mazes.GET("/:ID/text", mc.text)
		mazes.POST("/:ID/solve", mc.solve)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.GET("", mc.mine)
	}
}

func (mc *MazeController) generate(ctx *gin.Context) {
	ownerID, ok := identity.UserID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respond.BadRequest(ctx, err)
		return
	}

	record, err := mc.mazes.Generate(ownerID, request.Algorithm, request.Width, request.Height)
	if err != nil {
		respond.Error(ctx, err, mc.logger)
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(record))
}

func (mc *MazeController) mine(ctx *gin.Context) {
	ownerID, ok := identity.UserID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	records, err := mc.mazes.ByOwner(ownerID)
	if err != nil {
		respond.Error(ctx, err, mc.logger)
		return
	}

	response := make([]*MazeResponse, 0, len(records))
	for _, r := range records {
		response = append(response, newMazeResponse(r))
	}
	ctx.JSON(http.StatusOK, response)
}

func (mc *MazeController) byID(ctx *gin.Context) {
	record, ok := mc.record(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

func (mc *MazeController) text(ctx *gin.Context) {
	record, ok := mc.record(ctx)
	if !ok {
		return
	}
	ctx.String(http.StatusOK, strings.Join(record.Rows, "\n")+"\n")
}

func (mc *MazeController) solve(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respond.BadRequest(ctx, err)
		return
	}

	start, err := maze.ParsePoint(request.Start)
	if err != nil {
		respond.Error(ctx, err, mc.logger)
		return
	}
	end, err := maze.ParsePoint(request.End)
	if err != nil {
		respond.Error(ctx, err, mc.logger)
		return
	}

	solution, err := mc.mazes.Solve(ctx.Request.Context(), id, request.Algorithm, start, end)
	if err != nil {
		respond.Error(ctx, err, mc.logger)
		return
	}

	ctx.JSON(http.StatusOK, newSolveResponse(solution))
}

func (mc *MazeController) record(ctx *gin.Context) (*dmn.MazeRecord, bool) {
	id, ok := pathID(ctx)
	if !ok {
		return nil, false
	}

	record, err := mc.mazes.ByID(id)
	if err != nil {
		respond.Error(ctx, err, mc.logger)
		return nil, false
	}
	return record, true
}

func pathID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

