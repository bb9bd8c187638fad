package identity

import (
	"net/http"

	"github.com/beka-birhanu/vinom-maze/api/respond"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

// IdentityServer exposes account registration and token issuing.
type IdentityServer struct {
	authService i.Authenticator
	logger      i.Logger
}

// NewIdentityServer creates an IdentityServer. logger may be nil.
func NewIdentityServer(a i.Authenticator, logger i.Logger) *IdentityServer {
	return &IdentityServer{
		authService: a,
		logger:      logger,
	}
}

// RegisterPublic mounts /auth/register and /auth/login.
func (c *IdentityServer) RegisterPublic(route *gin.RouterGroup) {
	auth := route.Group("/auth")
	{
		auth.POST("/register", c.register)
		auth.POST("/login", c.login)
	}
}

// RegisterProtected mounts nothing; every identity route is public.
func (c *IdentityServer) RegisterProtected(*gin.RouterGroup) {}

func (c *IdentityServer) register(ctx *gin.Context) {
	request, ok := bindAuthRequest(ctx)
	if !ok {
		return
	}

	if err := c.authService.Register(request.Username, request.Password); err != nil {
		respond.Error(ctx, err, c.logger)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// login trades valid credentials for a bearer token used by the maze routes.
func (c *IdentityServer) login(ctx *gin.Context) {
	request, ok := bindAuthRequest(ctx)
	if !ok {
		return
	}

	user, token, err := c.authService.SignIn(request.Username, request.Password)
	if err != nil {
		respond.Error(ctx, err, c.logger)
		return
	}

	ctx.JSON(http.StatusOK, &AuthResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Token:    token,
	})
}

func bindAuthRequest(ctx *gin.Context) (*AuthRequest, bool) {
	var request AuthRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respond.BadRequest(ctx, err)
		return nil, false
	}
	return &request, true
}
