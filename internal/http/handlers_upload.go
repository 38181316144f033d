package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"banalysis/internal/midata"
)

// uploadField is the multipart form field holding the statement file.
const uploadField = "statement"

// handleStatements dispatches the /statements resource: POST uploads a
// new statement, DELETE clears the current one.
func (s *Server) handleStatements(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleUploadStatement(w, r)
	case http.MethodDelete:
		s.handleClearStatement(w, r)
	default:
		MethodNotAllowedError("POST, DELETE").Write(w)
	}
}

// handleUploadStatement accepts a midata CSV upload and binds it to
// the dashboard. On any parse failure the upload is rejected whole;
// the previously loaded statement, if any, stays bound.
func (s *Server) handleUploadStatement(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			PayloadTooLargeError(fmt.Sprintf("statement exceeds the %d byte upload limit", s.maxUploadBytes)).
				TriggerErrorNotification("Statement too large").
				Write(w)
			return
		}
		BadRequestError("invalid multipart upload").Write(w)
		return
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		BadRequestError("missing statement file: expected a 'statement' form field").Write(w)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if filename == "" || !allowedUploadExt(filename) {
		BadRequestError("statement must be a .csv or .txt file").Write(w)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		slog.ErrorContext(r.Context(), "Reading upload failed", "error", err, "filename", filename)
		InternalServerError("could not read upload").Write(w)
		return
	}

	st, err := s.statements.Load(r.Context(), filename, data)
	if err != nil {
		s.writeParseError(w, err)
		return
	}

	body, err := s.renderPartial("transactions_table", newTableView(st, true))
	if err != nil {
		slog.ErrorContext(r.Context(), "Table render failed after upload", "error", err)
		InternalServerError("statement loaded but could not be rendered").Write(w)
		return
	}

	NewHTMXResponse().
		TriggerStatementLoaded(st.ID, st.Summary.Transactions).
		TriggerSuccessNotification(fmt.Sprintf("Loaded %d transactions from %s", st.Summary.Transactions, filename)).
		Header("Content-Type", "text/html; charset=utf-8").
		Body(body).
		Write(w)
}

// handleClearStatement unbinds the current statement.
func (s *Server) handleClearStatement(w http.ResponseWriter, r *http.Request) {
	s.statements.Clear(r.Context())

	body, err := s.renderPartial("transactions_table", tableView{})
	if err != nil {
		InternalServerError("could not render empty table").Write(w)
		return
	}

	NewHTMXResponse().
		TriggerStatementCleared().
		Header("Content-Type", "text/html; charset=utf-8").
		Body(body).
		Write(w)
}

// writeParseError maps parser failures onto HTMX error responses. All
// three parse error families reject the upload in its entirety.
func (s *Server) writeParseError(w http.ResponseWriter, err error) {
	var (
		schemaErr *midata.SchemaError
		numErr    *midata.NumericParseError
		dateErr   *midata.DateParseError
	)

	switch {
	case errors.As(err, &schemaErr):
		UnprocessableEntityError("statement rejected: "+schemaErr.Error()).
			TriggerErrorNotification("Statement is missing required columns").
			Write(w)
	case errors.As(err, &numErr):
		UnprocessableEntityError("statement rejected: "+numErr.Error()).
			TriggerErrorNotification("Statement contains a non-numeric amount").
			Write(w)
	case errors.As(err, &dateErr):
		UnprocessableEntityError("statement rejected: "+dateErr.Error()).
			TriggerErrorNotification("Statement contains an invalid date").
			Write(w)
	default:
		UnprocessableEntityError("statement rejected: " + err.Error()).
			TriggerErrorNotification("Statement could not be read").
			Write(w)
	}
}
