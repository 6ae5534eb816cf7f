package main

import (
	"encoding/json"
	"io"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.dedis.ch/sharerecovery/peer"
	"go.dedis.ch/sharerecovery/peer/impl"
	"go.dedis.ch/sharerecovery/types"
)

// maxDocumentSize bounds the body of a recovery request.
const maxDocumentSize = 1 << 20

type RecoveryResponse struct {
	ID          string `json:"id"`
	Fingerprint string `json:"fingerprint,omitempty"`
	K           int    `json:"k,omitempty"`
	Secret      string `json:"secret,omitempty"`
	Cached      bool   `json:"cached,omitempty"`
	Kind        string `json:"kind,omitempty"`
	Error       string `json:"error,omitempty"`
}

type server struct {
	node peer.Recoverer
}

func newRouter(node peer.Recoverer) *mux.Router {
	s := server{node: node}

	r := mux.NewRouter()
	r.HandleFunc("/recover", s.recoverHandler).Methods(http.MethodPost)
	r.HandleFunc("/results", s.resultsHandler).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(handler)
	return r
}

func handler(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "not found: "+r.URL.Path, http.StatusNotFound)
}

func (s server) recoverHandler(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentSize))
	if err != nil {
		http.Error(w, "Invalid post request", http.StatusBadRequest)
		return
	}

	source := r.URL.Query().Get("source")
	if source == "" {
		source = r.RemoteAddr
	}

	rec, err := s.node.RecoverDocument(source, data)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if impl.ErrorKind(err) == impl.KindInvalidInput {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, toResponse(rec))
		return
	}

	writeJSON(w, http.StatusOK, toResponse(rec))
}

func (s server) resultsHandler(w http.ResponseWriter, r *http.Request) {
	results := s.node.Results()
	resp := make([]RecoveryResponse, len(results))
	for i, rec := range results {
		resp[i] = toResponse(rec)
	}
	writeJSON(w, http.StatusOK, resp)
}

func toResponse(rec types.Recovery) RecoveryResponse {
	resp := RecoveryResponse{
		ID:          rec.ID,
		Fingerprint: rec.Fingerprint,
		K:           rec.K,
		Cached:      rec.Cached,
	}
	if rec.Failed() {
		resp.Kind = impl.ErrorKind(rec.Err)
		resp.Error = rec.Err.Error()
		return resp
	}
	resp.Secret = rec.Secret.String()
	return resp
}

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(value)
	if err != nil {
		log.Warn().Err(err).Msg("failed to write response")
	}
}

func main() {
	app := &cli.App{
		Name:  "sharerecovery-http",
		Usage: "serve secret recoveries over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: ":8080", Usage: "listen address"},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML configuration file"},
		},
		Action: func(c *cli.Context) error {
			conf := peer.DefaultConfiguration()
			if c.String("config") != "" {
				loaded, err := peer.ConfigurationFromYAML(c.String("config"))
				if err != nil {
					return err
				}
				conf = *loaded
			}

			log.Info().Msgf("listening on %s", c.String("addr"))
			return http.ListenAndServe(c.String("addr"), newRouter(impl.NewRecoverer(conf)))
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}

	// // recover a secret
	// curl -X POST --data-binary @shares.json http://127.0.0.1:8080/recover?source=shares.json

	// // list recovered secrets
	// curl http://127.0.0.1:8080/results
}
