package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"piquante/internal/core"
	"piquante/internal/http/payload"

	"go.uber.org/zap"
)

var (
	ListSauces  = "GET /api/sauces"
	GetSauce    = "GET /api/sauces/{id}"
	CreateSauce = "POST /api/sauces"
	UpdateSauce = "PUT /api/sauces/{id}"
	DeleteSauce = "DELETE /api/sauces/{id}"
	RateSauce   = "POST /api/sauces/{id}/like"
)

// sauceField is the multipart form field carrying the JSON-encoded sauce.
const sauceField = "sauce"

type SauceHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	sauces           SauceService
	files            FileReceiver
}

func NewSauceHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, sauceService SauceService, files FileReceiver) *SauceHandler {
	return &SauceHandler{
		logs:             logger,
		requestValidator: requestValidator,
		sauces:           sauceService,
		files:            files,
	}
}

func (h *SauceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	records, err := h.sauces.ListSauces(r.Context())
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not retrieve sauces",
			Error:   "unexpected error occurred",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to list sauces",
			"error", err,
			"handler", ListSauces,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, records, http.StatusOK, requestId)
}

func (h *SauceHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	id := r.PathValue("id")

	record, err := h.sauces.GetSauce(r.Context(), id)
	if err != nil {
		httpCode := http.StatusInternalServerError
		resp := Response{Message: "Could not retrieve sauce", Error: "unexpected error occurred"}
		if errors.Is(err, core.ErrSauceNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get sauce",
			"error", err,
			"handler", GetSauce,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, record, http.StatusOK, requestId)
}

func (h *SauceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	stored, err := h.files.Receive(r)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not create sauce",
			Error:   fmt.Errorf("receive image: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to receive image",
			"error", err,
			"handler", CreateSauce,
			"request_id", requestId)
		return
	}

	saucePayload, err := h.decodeSauceField(r)
	if err != nil {
		h.discardFile(stored.Name, requestId)
		respond(h.logs, w, Response{
			Message: "Could not create sauce",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate sauce payload",
			"error", err,
			"handler", CreateSauce,
			"request_id", requestId)
		return
	}

	record, err := h.sauces.CreateSauce(r.Context(), saucePayload.ToMessage(), callerID(r), imageURL(r, stored.Name))
	if err != nil {
		h.discardFile(stored.Name, requestId)
		respond(h.logs, w, Response{
			Message: "Could not create sauce",
			Error:   "unexpected error occurred",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to create sauce",
			"error", err,
			"handler", CreateSauce,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{Message: "Sauce created", Data: record}, http.StatusCreated, requestId)
}

func (h *SauceHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	id := r.PathValue("id")

	var saucePayload payload.SauceRequest
	newImageURL := ""

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		stored, err := h.files.Receive(r)
		if err != nil {
			respond(h.logs, w, Response{
				Message: "Could not update sauce",
				Error:   fmt.Errorf("receive image: %w", err).Error(),
			}, http.StatusBadRequest,
				requestId)
			h.logs.Errorw("failed to receive image",
				"error", err,
				"handler", UpdateSauce,
				"request_id", requestId)
			return
		}

		saucePayload, err = h.decodeSauceField(r)
		if err != nil {
			h.discardFile(stored.Name, requestId)
			respond(h.logs, w, Response{
				Message: "Could not update sauce",
				Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
			}, http.StatusBadRequest,
				requestId)
			h.logs.Errorw("failed to decode and validate sauce payload",
				"error", err,
				"handler", UpdateSauce,
				"request_id", requestId)
			return
		}

		newImageURL = imageURL(r, stored.Name)
	} else {
		err := h.requestValidator.DecodeAndValidateJSONPayload(r, &saucePayload)
		if err != nil {
			respond(h.logs, w, Response{
				Message: "Could not update sauce",
				Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
			}, http.StatusBadRequest,
				requestId)
			h.logs.Errorw("failed to decode and validate request payload",
				"error", err,
				"handler", UpdateSauce,
				"request_id", requestId)
			return
		}
	}

	err := h.sauces.UpdateSauce(r.Context(), id, saucePayload.ToMessage(), newImageURL)
	if err != nil {
		httpCode := http.StatusBadRequest
		resp := Response{Message: "Could not update sauce", Error: "unexpected error occurred"}
		if errors.Is(err, core.ErrSauceNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("failed to update sauce",
			"error", err,
			"handler", UpdateSauce,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{Message: "Sauce updated"}, http.StatusOK, requestId)
}

func (h *SauceHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	id := r.PathValue("id")

	err := h.sauces.DeleteSauce(r.Context(), id)
	if err != nil {
		httpCode := http.StatusInternalServerError
		resp := Response{Message: "Could not delete sauce", Error: "unexpected error occurred"}
		if errors.Is(err, core.ErrSauceNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("failed to delete sauce",
			"error", err,
			"handler", DeleteSauce,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{Message: "Sauce deleted"}, http.StatusOK, requestId)
}

func (h *SauceHandler) HandleRate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	id := r.PathValue("id")

	var likePayload payload.LikeRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &likePayload)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not rate sauce",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", RateSauce,
			"request_id", requestId)
		return
	}

	caller := callerID(r)
	if likePayload.UserID != caller {
		respond(h.logs, w, Response{
			Message: "Could not rate sauce",
			Error:   "user id does not match authenticated user",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("user id mismatch in rating request",
			"handler", RateSauce,
			"request_id", requestId)
		return
	}

	value := *likePayload.Like
	err = h.sauces.RateSauce(r.Context(), id, core.RateMessage{UserID: caller, Value: value})
	if err != nil {
		httpCode := http.StatusInternalServerError
		resp := Response{Message: "Could not rate sauce", Error: "unexpected error occurred"}
		if errors.Is(err, core.ErrSauceNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else if errors.Is(err, core.ErrAlreadyRated) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("failed to rate sauce",
			"error", err,
			"handler", RateSauce,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{Message: rateMessage(value)}, http.StatusOK, requestId)
}

func (h *SauceHandler) decodeSauceField(r *http.Request) (payload.SauceRequest, error) {
	raw := r.FormValue(sauceField)
	if raw == "" {
		return payload.SauceRequest{}, fmt.Errorf("missing %q form field", sauceField)
	}

	var saucePayload payload.SauceRequest
	if err := h.requestValidator.DecodeAndValidateJSONString(raw, &saucePayload); err != nil {
		return payload.SauceRequest{}, err
	}

	return saucePayload, nil
}

// discardFile removes a file stored for a request that did not go through.
func (h *SauceHandler) discardFile(name string, requestId string) {
	if err := h.files.Remove(name); err != nil {
		h.logs.Warnw("failed to remove stored file", "error", err, "file", name, "request_id", requestId)
	}
}

func imageURL(r *http.Request, name string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/images/%s", scheme, r.Host, name)
}

func rateMessage(value int) string {
	switch value {
	case 1:
		return "Sauce liked"
	case -1:
		return "Sauce disliked"
	default:
		return "Rating reset"
	}
}
