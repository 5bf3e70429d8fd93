package server

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/logsculpt/logsculpt/pkg/logfile"
	"github.com/logsculpt/logsculpt/pkg/render"
	"github.com/logsculpt/logsculpt/pkg/rewrite"
	"github.com/logsculpt/logsculpt/pkg/session"
)

// maxBodySize bounds request bodies (72 MB, log text plus JSON overhead).
const maxBodySize = 72 << 20

// parseRequest is the body for /api/parse and /api/series.
type parseRequest struct {
	// Text is the raw log text.
	Text string `json:"text"`

	// Keys optionally restricts /api/series to the named metrics.
	Keys []string `json:"keys,omitempty"`

	// Colors maps metric name to a display color hint (/api/series).
	Colors map[string]string `json:"colors,omitempty"`
}

// recordJSON is the wire form of one record.
type recordJSON struct {
	Epoch  int                    `json:"epoch"`
	Fields map[string]interface{} `json:"fields"`
}

// parseResponse is the reply for /api/parse.
type parseResponse struct {
	Args    map[string]string `json:"args"`
	Records []recordJSON      `json:"records"`
	Keys    []string          `json:"keys"`
	Empty   bool              `json:"empty"`
}

// applyRequest is the body for /api/apply.
type applyRequest struct {
	// Text is the raw log text.
	Text string `json:"text"`

	// Edits are applied in order.
	Edits []session.EditOperation `json:"edits"`

	// Fields optionally overrides the rewrite allow-list; when empty the
	// allow-list is the set of metrics the edits touched.
	Fields []string `json:"fields,omitempty"`
}

// applyResponse is the reply for /api/apply.
type applyResponse struct {
	// Text is the rewritten log.
	Text string `json:"text"`

	// Epochs lists the epochs whose lines changed, ascending.
	Epochs []int `json:"epochs"`

	// Fields is the allow-list that was applied.
	Fields []string `json:"fields"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if !s.decode(w, r, &req) {
		return
	}

	result := logfile.Parse(req.Text)
	writeJSON(w, http.StatusOK, toParseResponse(result))
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if !s.decode(w, r, &req) {
		return
	}

	result := logfile.Parse(req.Text)
	if result.Empty() {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "no epoch data found"})
		return
	}

	keys := req.Keys
	if len(keys) == 0 {
		keys = result.Keys
	}
	writeJSON(w, http.StatusOK, render.BuildSeries(result.Records, keys, req.Colors))
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if !s.decode(w, r, &req) {
		return
	}

	result := logfile.Parse(req.Text)
	if result.Empty() {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "no epoch data found"})
		return
	}

	sess := session.New(result)
	for _, op := range req.Edits {
		if err := sess.Apply(op); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
	}

	fields := sess.ModifiedFieldSet()
	if len(req.Fields) > 0 {
		fields = make(map[string]bool, len(req.Fields))
		for _, f := range req.Fields {
			fields[f] = true
		}
	}

	text, touched := rewrite.Rewrite(req.Text, sess.Records(), fields)

	epochs := make([]int, 0, len(touched))
	for epoch := range touched {
		epochs = append(epochs, epoch)
	}
	sort.Ints(epochs)

	fieldList := make([]string, 0, len(fields))
	for f := range fields {
		fieldList = append(fieldList, f)
	}
	sort.Strings(fieldList)

	writeJSON(w, http.StatusOK, applyResponse{
		Text:   text,
		Epochs: epochs,
		Fields: fieldList,
	})
}

// decode reads a JSON body, replying with 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.logger.Warn("bad request body", "path", r.URL.Path, "err", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// toParseResponse converts a parse result to its wire form, flattening
// Values to JSON numbers or strings.
func toParseResponse(result *logfile.ParseResult) parseResponse {
	resp := parseResponse{
		Args:    result.Args,
		Keys:    result.Keys,
		Empty:   result.Empty(),
		Records: make([]recordJSON, 0, len(result.Records)),
	}
	for _, rec := range result.Records {
		fields := make(map[string]interface{}, len(rec.Fields))
		for key, v := range rec.Fields {
			if v.IsNumber {
				fields[key] = v.Number
			} else {
				fields[key] = v.Text
			}
		}
		resp.Records = append(resp.Records, recordJSON{Epoch: rec.Epoch, Fields: fields})
	}
	return resp
}
