package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/payremind/backend/internal/httputil"
	"github.com/payremind/backend/internal/models"
)

func RegisterCredentialsRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCredentials)
		r.POST("", RegisterCredentials)
	}
	{
		r.OPTIONS("/login", OptionsLogin)
		r.POST("/login", Login)
	}
}

// CredentialsEditable is the request body for registration and login.
//
// Credentials are stored in plaintext, see the models package for why this
// is an accepted gap.
type CredentialsEditable struct {
	Email    string `json:"email" example:"user@example.com" default:""` // Email address
	Password string `json:"password" example:"hunter2" default:""`      // Password
}

// model returns the database resource for the API representation of the editable fields
func (editable CredentialsEditable) model() models.Credentials {
	return models.Credentials{
		Email:    editable.Email,
		Password: editable.Password,
	}
}

type CredentialsResponse struct {
	Error *string `json:"error" example:"email and password must both be set"` // The error, if any occurred
	Data  *string `json:"data" example:"credentials registered"`               // Confirmation message
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Credentials
// @Success		204
// @Router			/v1/credentials [options]
func OptionsCredentials(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Credentials
// @Success		204
// @Router			/v1/credentials/login [options]
func OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Register credentials
// @Description	Registers the local user. Only one user record can exist.
// @Tags			Credentials
// @Accept			json
// @Produce		json
// @Success		201			{object}	CredentialsResponse
// @Failure		400			{object}	CredentialsResponse
// @Failure		500			{object}	CredentialsResponse
// @Param			credentials	body		CredentialsEditable	true	"Credentials"
// @Router			/v1/credentials [post]
func RegisterCredentials(c *gin.Context) {
	var editable CredentialsEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CredentialsResponse{
			Error: &e,
		})
		return
	}

	credentials := editable.model()
	err = models.DB.Create(&credentials).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CredentialsResponse{
			Error: &e,
		})
		return
	}

	message := "credentials registered"
	c.JSON(http.StatusCreated, CredentialsResponse{Data: &message})
}

// @Summary		Log in
// @Description	Verifies email and password against the registered credentials
// @Tags			Credentials
// @Accept			json
// @Produce		json
// @Success		200			{object}	CredentialsResponse
// @Failure		400			{object}	CredentialsResponse
// @Failure		401			{object}	CredentialsResponse
// @Failure		404			{object}	CredentialsResponse
// @Failure		500			{object}	CredentialsResponse
// @Param			credentials	body		CredentialsEditable	true	"Credentials"
// @Router			/v1/credentials/login [post]
func Login(c *gin.Context) {
	var editable CredentialsEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CredentialsResponse{
			Error: &e,
		})
		return
	}

	ok, err := models.Verify(editable.Email, editable.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CredentialsResponse{
			Error: &e,
		})
		return
	}

	if !ok {
		e := "invalid email or password"
		c.JSON(http.StatusUnauthorized, CredentialsResponse{
			Error: &e,
		})
		return
	}

	message := "login successful"
	c.JSON(http.StatusOK, CredentialsResponse{Data: &message})
}
