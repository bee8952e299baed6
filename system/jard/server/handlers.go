package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jarstore/go-jar"
	"github.com/jarstore/go-jar/codec"
	"github.com/jarstore/go-jar/formula"
)

// handleTrigger applies a one-shot mutation from query parameters. The
// request carries key (required), value (optional), and type (optional,
// default text). A missing key is a 200 no-op, so replays and refreshes
// are harmless.
func (s *Server) handleTrigger(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &jar.TriggerRequest{
		Key:   q.Get("key"),
		Value: q.Get("value"),
		Type:  q.Get("type"),
	}
	var ack string
	err := s.Spec.Store.Update(func(j *jar.Jar) error {
		var err error
		ack, err = j.Trigger(req)
		return err
	})
	if err != nil {
		s.Spec.Log.Warn("trigger rejected", "key", req.Key, "type", req.Type, "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.Spec.Log.Info("trigger applied", "key", req.Key, "type", req.Type, "ack", ack)
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, ack)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var d []byte
	err := s.Spec.Store.View(func(j *jar.Jar) error {
		var err error
		d, err = codec.MarshalIndent(j.Nodes)
		return err
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", s.Spec.JarName+".json"))
	w.Write(d)
}

// handleImport replaces the whole tree with the posted JSON document.
// Malformed JSON is reported and leaves the current tree untouched.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("import requires POST"))
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	merge := r.URL.Query().Get("merge") == "true"
	err = s.Spec.Store.Update(func(j *jar.Jar) error {
		if merge {
			return j.MergeImport(body)
		}
		return j.Import(body)
	})
	if err != nil {
		s.Spec.Log.Warn("import rejected", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.Spec.Log.Info("import applied", "bytes", len(body), "merge", merge)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	var d []byte
	err := s.Spec.Store.View(func(j *jar.Jar) error {
		n := j.Get(path)
		if n == nil {
			return fmt.Errorf("%w: %s", formula.ErrReference, path)
		}
		var err error
		d, err = codec.MarshalNode(n)
		return err
	})
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(d)
}

type evalResponse struct {
	Result string `json:"result"`
	Error  string `json:"error,omitempty"`
}

func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	resp := &evalResponse{}
	found := true
	s.Spec.Store.View(func(j *jar.Jar) error {
		if n := j.Get(path); n == nil {
			found = false
			return nil
		}
		res, err := j.EvalPath(path)
		resp.Result = res.String()
		if err != nil {
			// evaluation failures are localized to the node: the sentinel
			// plus a message, not an HTTP error
			resp.Error = err.Error()
		}
		return nil
	})
	if !found {
		writeError(w, http.StatusNotFound, fmt.Errorf("%w: %s", formula.ErrReference, path))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	fmt.Fprintln(w, err.Error())
}
