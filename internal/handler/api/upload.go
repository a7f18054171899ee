package api

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/parkatlas/park-media-go/internal/api_context"
	"github.com/parkatlas/park-media-go/internal/port"
	"github.com/parkatlas/park-media-go/internal/processor"
	"github.com/parkatlas/park-media-go/internal/validation"
)

const multipartMemoryLimit = 32 << 20 // 32 MiB before spilling to disk

type UploadRequest struct {
	ParkCode string `json:"park_code" validate:"required,alphanum,max=10"`
}

// UploadHandler accepts a multipart upload (field "file" plus a "park_code"
// form value) and drives it through the media pipeline. The response is the
// finalised asset row: 201 when ready, 422 when the pipeline rejected or
// failed the upload (the row carries the error message either way).
func UploadHandler(svc port.Uploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			ownerID = "anonymous"
		}

		r.Body = http.MaxBytesReader(w, r.Body, processor.MaxVideoSizeBytes+multipartMemoryLimit)
		if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid multipart payload", err)
			return
		}

		req := UploadRequest{ParkCode: r.FormValue("park_code")}
		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", err)
				return
			}
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			log.Printf("❌  Validation failed: %s", errsJSON)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "a \"file\" upload is required", err)
			return
		}
		defer func() {
			if err := file.Close(); err != nil {
				log.Printf("failed to close uploaded file: %v", err)
			}
		}()

		data, err := io.ReadAll(file)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "could not read uploaded file", err)
			return
		}

		in := port.UploadInput{
			OwnerID:     ownerID,
			ParkCode:    req.ParkCode,
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		}
		asset, err := svc.Upload(r.Context(), in)
		if err != nil {
			if asset == nil {
				WriteError(w, http.StatusInternalServerError, "could not register upload", err)
				return
			}
			// row is finalised as failed; surface it with the captured message
			log.Printf("❌  Upload of %q failed: %v", header.Filename, err)
			RespondJSON(w, http.StatusUnprocessableEntity, asset)
			return
		}

		RespondJSON(w, http.StatusCreated, asset)
		log.Printf("✅  Successfully processed upload of media #%s (%s)", asset.ID, fmt.Sprintf("%s/%s", asset.MediaType, asset.ParkCode))
	}
}
