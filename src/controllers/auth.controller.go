package controllers

import (
	"errors"
	"log"
	"net/http"

	"ets/src/models"
	"ets/src/store"
	"ets/src/types"
	"ets/src/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

var errInvalidCredentials = errors.New("invalid username or password")

func AuthRegister(ctx *gin.Context) (user *models.User, status int, err error) {
	var body types.RegisterUserRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %s\n", err.Error())
		return nil, http.StatusInternalServerError, err
	}
	newUser := models.User{
		Username: body.Username,
		Password: string(hash),
		Email:    body.Email,
		FullName: body.FullName,
	}
	if err := store.Get().CreateUser(&newUser); err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			return nil, http.StatusBadRequest, err
		}
		log.Printf("Error creating user: %s\n", err.Error())
		return nil, http.StatusInternalServerError, err
	}
	return &newUser, http.StatusCreated, nil
}

func AuthLogin(ctx *gin.Context) (token *string, user *models.User, status int, err error) {
	var body types.LoginUserRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, nil, http.StatusBadRequest, err
	}
	muser, err := store.Get().GetUserByUsername(body.Username)
	if err != nil {
		return nil, nil, http.StatusUnauthorized, errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(muser.Password), []byte(body.Password)); err != nil {
		return nil, nil, http.StatusUnauthorized, errInvalidCredentials
	}
	jwt, err := utils.GenerateJWT(muser.Username, muser.ID)
	if err != nil {
		log.Printf("Error generating JWT token: %s\n", err.Error())
		return nil, nil, http.StatusInternalServerError, err
	}
	return &jwt, muser, http.StatusOK, nil
}
