package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/GregMSThompson/expense-dashboard/pkg/logger"
)

// WriteSuccess encodes data as the bare JSON body; clients of the expense
// API read records directly, without an envelope.
func (h *responseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode success response", "error", err, "status", status)
	}
}

func (h *responseHandler) WriteAttachment(w http.ResponseWriter, r *http.Request, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	if filename != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(body); err != nil {
		logger.FromContext(r.Context()).Error("failed to write attachment", "error", err, "filename", filename)
	}
}
