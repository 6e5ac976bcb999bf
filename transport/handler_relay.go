package transport

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/muhammadheryan/fw-development/constant"
	"github.com/muhammadheryan/fw-development/model"
	"github.com/muhammadheryan/fw-development/utils/errors"
	"github.com/muhammadheryan/fw-development/utils/logger"
	"go.uber.org/zap"
)

// ContactStatus handler
// @Summary Contact relay status
// @Tags Relay
// @Produce json
// @Success 200 {object} model.StatusMessage
// @Router /contact [get]
func (s *RestHandler) ContactStatus(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, model.StatusMessage{Message: "Contact API is working!"})
}

// Contact handler
// @Summary Send contact form
// @Description Notifies the business inbox and sends the customer an auto-reply
// @Tags Relay
// @Accept json
// @Produce json
// @Param request body model.ContactRequest true "Contact Request"
// @Success 200 {object} model.ContactResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /contact [post]
func (s *RestHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req model.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrMissingFields))
		return
	}

	res, err := s.ContactApp.Send(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// PaymentProofStatus handler
// @Summary Payment proof relay status
// @Tags Relay
// @Produce json
// @Success 200 {object} model.StatusMessage
// @Router /payment-proof [get]
func (s *RestHandler) PaymentProofStatus(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, model.StatusMessage{Message: "Payment Proof API is working!"})
}

// PaymentProof handler
// @Summary Submit payment proof
// @Description Relays the transfer screenshot to the business inbox and confirms to the customer
// @Tags Relay
// @Accept multipart/form-data
// @Produce json
// @Param paymentProof formData file true "Transfer screenshot (image, max 5MB)"
// @Param customerPhone formData string true "Customer phone"
// @Param additionalNotes formData string false "Notes"
// @Param orderData formData string true "Order JSON"
// @Success 200 {object} model.PaymentProofResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /payment-proof [post]
func (s *RestHandler) PaymentProof(w http.ResponseWriter, r *http.Request) {
	maxSize := s.MaxProofSize
	if maxSize <= 0 {
		maxSize = constant.MaxPaymentProofSize
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+formOverhead)

	if err := r.ParseMultipartForm(maxSize + formOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			writeError(w, errors.SetCustomError(constant.ErrProofTooLarge))
			return
		}
		logger.Info("[PaymentProof] parse form", zap.String("error", err.Error()))
		writeError(w, errors.SetCustomError(constant.ErrMissingFields))
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	proof, err := readProof(r)
	if err != nil {
		logger.Error("[PaymentProof] read upload", zap.String("error", err.Error()))
		writeError(w, errors.SetCustomError(constant.ErrPaymentProofSubmit))
		return
	}

	res, err := s.PaymentApp.SubmitProof(r.Context(), &model.PaymentProofRequest{
		PaymentProof:    proof,
		CustomerPhone:   r.FormValue("customerPhone"),
		AdditionalNotes: r.FormValue("additionalNotes"),
		OrderData:       r.FormValue("orderData"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// readProof returns nil without error when no file was sent.
func readProof(r *http.Request) (*model.ProofFile, error) {
	file, header, err := r.FormFile("paymentProof")
	if stderrors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return proofFromPart(file, header)
}

func proofFromPart(file multipart.File, header *multipart.FileHeader) (*model.ProofFile, error) {
	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &model.ProofFile{
		OriginalName: header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		Size:         header.Size,
		Content:      content,
	}, nil
}
