package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-service-api/internal/application/authz"
	"user-service-api/internal/application/ports"
	userDomain "user-service-api/internal/domain/user"
	"user-service-api/internal/interface/api/rest/dto/user"
	"user-service-api/internal/interface/api/rest/middleware"
	"user-service-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	verifier ports.TokenVerifier,
	extractor authz.Extractor,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	authn := middleware.Authenticate(verifier, extractor)
	admin := middleware.RequireAuthority(authz.AuthorityAdmin)

	// open
	r.POST(RouteUsersSignup, uc.SignupHandler)

	// self-service
	r.GET(RouteUsersOwnProfile, authn, uc.GetOwnProfileHandler)
	r.PUT(RouteUsersOwnProfile, authn, uc.UpdateOwnProfileHandler)
	r.PATCH(RouteUsersOwnNotification, authn, uc.UpdateOwnNotificationsHandler)

	// any authenticated caller
	r.GET(RouteUserPublic, authn, uc.GetPublicProfileHandler)

	// admin only
	r.GET(RouteUsersAll, authn, admin, uc.GetUsersHandler)
	r.GET(RouteUsersByEmail, authn, admin, uc.GetUserByEmailHandler)
	r.GET(RouteUser, authn, admin, uc.GetUserHandler)
	r.PUT(RouteUserProfile, authn, admin, uc.UpdateProfileHandler)
	r.PATCH(RouteUserNotification, authn, admin, uc.UpdateNotificationsHandler)
	r.PATCH(RouteUserStatus, authn, admin, uc.ChangeStatusHandler)

	return uc
}

func (uc *UserController) SignupHandler(c *gin.Context) {
	var req user.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUserSignup(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := uc.userService.CreateUser(c.Request.Context(), user.ToDomainSignup(req))
	if err != nil {
		if errors.Is(err, userDomain.ErrEmailAlreadyUsed) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a user"},
		)
		uc.logger.Error("CreateUser() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, user.ToResponseUser(*u))
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	users, err := uc.userService.FindUsers(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get users"},
		)
		uc.logger.Error("FindUsers() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, user.ResponseData{
		Data: user.ToResponseUsers(users),
	})
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("user_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a positive integer"},
		)
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), userDomain.ID(id))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		uc.logger.Error("FindUserByID() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToAdminResponse(*u))
}

func (uc *UserController) GetUserByEmailHandler(c *gin.Context) {
	email := c.Query("email")
	if err := validator.ValidateEmailQuery(email); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	u, err := uc.userService.FindByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		uc.logger.Error("FindByEmail() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) GetPublicProfileHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("user_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a positive integer"},
		)
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), userDomain.ID(id))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		uc.logger.Error("FindUserByID() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToPublicProfileResponse(*u))
}

func (uc *UserController) GetOwnProfileHandler(c *gin.Context) {
	email := middleware.EmailFromCtx(c)
	if email == "" {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "token has no email claim"},
		)
		return
	}

	u, err := uc.userService.FindByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		uc.logger.Error("FindByEmail() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToProfileResponse(*u))
}

func (uc *UserController) UpdateOwnProfileHandler(c *gin.Context) {
	email := middleware.EmailFromCtx(c)
	if email == "" {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "token has no email claim"},
		)
		return
	}

	var req user.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUserProfileUpdate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := uc.userService.UpdateProfileByEmail(c.Request.Context(), email, user.ToProfilePatch(req))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a user"},
		)
		uc.logger.Error("UpdateProfileByEmail() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToProfileResponse(*u))
}

func (uc *UserController) UpdateProfileHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("user_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a positive integer"},
		)
		return
	}

	var req user.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUserProfileUpdate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := uc.userService.UpdateProfile(c.Request.Context(), userDomain.ID(id), user.ToProfilePatch(req))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a user"},
		)
		uc.logger.Error("UpdateProfile() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToAdminResponse(*u))
}

func (uc *UserController) UpdateOwnNotificationsHandler(c *gin.Context) {
	email := middleware.EmailFromCtx(c)
	if email == "" {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "token has no email claim"},
		)
		return
	}

	var req user.UpdateNotificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	u, err := uc.userService.UpdateNotificationsByEmail(c.Request.Context(), email, user.ToNotificationPatch(req))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a user"},
		)
		uc.logger.Error("UpdateNotificationsByEmail() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToProfileResponse(*u))
}

func (uc *UserController) UpdateNotificationsHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("user_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a positive integer"},
		)
		return
	}

	var req user.UpdateNotificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	u, err := uc.userService.UpdateNotifications(c.Request.Context(), userDomain.ID(id), user.ToNotificationPatch(req))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a user"},
		)
		uc.logger.Error("UpdateNotifications() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToAdminResponse(*u))
}

func (uc *UserController) ChangeStatusHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("user_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a positive integer"},
		)
		return
	}

	var req user.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	status, ok := userDomain.ParseStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": map[string]string{"status": "status must be one of ACTIVE, SUSPENDED, DELETED"},
		})
		return
	}

	u, err := uc.userService.ChangeStatus(c.Request.Context(), userDomain.ID(id), status)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a user"},
		)
		uc.logger.Error("ChangeStatus() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToAdminResponse(*u))
}
