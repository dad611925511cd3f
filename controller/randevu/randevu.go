package randevu

import (
	"context"
	"log"
	"net/http"

	"randevuapi/dto"
	"randevuapi/middleware"
	"randevuapi/model"
	"randevuapi/services/recaptcha"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Notifier delivers a validated submission to the clinic.
type Notifier interface {
	Notify(ctx context.Context, sub model.Submission) error
}

var validate = validator.New()

func RandevuController(router *gin.Engine, limit gin.HandlerFunc, verifier recaptcha.Verifier, notifier Notifier, actions []string) {
	router.POST("/api/randevu", limit, func(c *gin.Context) {
		Randevu(c, verifier, notifier, actions)
	})
}

func Randevu(c *gin.Context, verifier recaptcha.Verifier, notifier Notifier, actions []string) {
	reqID := middleware.GetRequestID(c)

	var req dto.RandevuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[%s] randevu: unreadable body: %v", reqID, err)
		req = dto.RandevuRequest{}
	}

	token := req.Captcha()
	if token == "" {
		c.JSON(http.StatusBadRequest, dto.Fail(dto.MsgCaptchaRequired))
		return
	}

	result := verifier.Verify(c.Request.Context(), token, c.ClientIP())
	if !result.Success {
		log.Printf("[%s] randevu: verification failed score=%.2f action=%q reasons=%v", reqID, result.Score, result.Action, result.Reasons)
		c.JSON(http.StatusBadRequest, dto.Fail(dto.MsgCaptchaFailed))
		return
	}
	if !recaptcha.ActionAccepted(result.Action, actions) {
		log.Printf("[%s] randevu: unexpected recaptcha action %q, expected one of %v", reqID, result.Action, actions)
	}

	sub := req.Submission()
	if err := validate.Struct(sub); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(dto.MsgMissingFields))
		return
	}

	if err := notifier.Notify(c.Request.Context(), sub); err != nil {
		log.Printf("[%s] randevu: email dispatch failed: %v", reqID, err)
		c.JSON(http.StatusInternalServerError, dto.Fail(dto.MsgSendFailed))
		return
	}

	log.Printf("[%s] randevu: request from %q relayed", reqID, sub.FullName)
	c.JSON(http.StatusOK, dto.OK(dto.MsgSuccess))
}
