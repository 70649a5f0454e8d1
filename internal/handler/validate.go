package handler

import (
    "errors"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/cinema-booking-web/internal/workflow"
)

// ValidateHandler accepts scanned QR payloads from the validation page.
type ValidateHandler struct {
    WF *workflow.Validator
}

func NewValidateHandler(wf *workflow.Validator) *ValidateHandler {
    return &ValidateHandler{WF: wf}
}

type scanRequest struct {
    RawValue string `json:"rawValue" form:"rawValue"`
}

// Scan processes one scan frame.  The camera script posts JSON and gets
// the validation result back (or 204 for frames that were dropped: empty,
// duplicate, or failed — scanner errors are logged, never surfaced).  The
// no-script form post renders the page with the result inline.
func (h *ValidateHandler) Scan(c echo.Context) error {
    var req scanRequest
    if err := c.Bind(&req); err != nil {
        return c.NoContent(http.StatusBadRequest)
    }

    res, err := h.WF.HandleScan(c.Request().Context(), req.RawValue)
    wantsJSON := strings.Contains(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

    if err != nil {
        if !errors.Is(err, workflow.ErrEmptyScan) && !errors.Is(err, workflow.ErrDuplicateScan) {
            c.Logger().Errorf("scan: %v", err)
        }
        if wantsJSON {
            return c.NoContent(http.StatusNoContent)
        }
        return c.Render(http.StatusOK, "validate.html", validateData{Header: headerData(c)})
    }

    if wantsJSON {
        return c.JSON(http.StatusOK, res)
    }
    return c.Render(http.StatusOK, "validate.html", validateData{Header: headerData(c), Result: res})
}
