package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Afzal-gif888/campus-cafe-mate/auth"
	"github.com/Afzal-gif888/campus-cafe-mate/utils"
)

type UserController struct {
	Verifier auth.Verifier
}

func NewUserController(verifier auth.Verifier) *UserController {
	return &UserController{Verifier: verifier}
}

// Login -> verify credentials, return JWT
func (uc *UserController) Login(c *gin.Context) {
	var creds auth.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := uc.Verifier.Verify(creds)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Name, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for %s (role=%s)", user.ID, user.Role)

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}
