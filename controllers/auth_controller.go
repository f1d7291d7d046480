package controllers

import (
	"errors"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/pkg/resp"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/repository"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/services"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/utils"
)

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Svc       *services.AuthService
	UploadDir string
}

func NewAuthController(svc *services.AuthService, uploadDir string) *AuthController {
	return &AuthController{Svc: svc, UploadDir: uploadDir}
}

// userJSON shapes the session payload the frontend consumes; the password
// hash never leaves the service layer.
func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id": u.ID, "email": u.Email, "firstName": u.FirstName,
		"lastName": u.LastName, "phoneNumber": u.PhoneNumber,
		"role": u.Role, "avatar": u.Avatar,
		"emailConfirmedAt": u.EmailConfirmedAt,
	}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(req.Email, req.Password, req.FirstName, req.LastName, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, userJSON(user))
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": userJSON(user)})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, userJSON(user))
}

// PATCH /auth/me
func (a *AuthController) UpdateMe(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := a.Svc.UpdateProfile(utils.CurrentUserID(c), patch)
	if err != nil {
		if errors.Is(err, repository.ErrBadPatch) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, userJSON(user))
}

// UploadAvatar accepts a data:image/... URL in the body.
func (a *AuthController) UploadAvatar(c *gin.Context) {
	var body struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	filename, err := utils.SaveDataURLImage(body.Image, a.UploadDir)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := a.Svc.SetAvatar(utils.CurrentUserID(c), path.Join("/uploads", filename))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, userJSON(user))
}

// DeleteAccount is the privileged account-deletion surface. Success is
// {message}; every failure is {error} with 400, matching the contract the
// frontend expects.
func (a *AuthController) DeleteAccount(c *gin.Context) {
	if err := a.Svc.DeleteAccount(utils.CurrentUserID(c)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
