package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/studyflowhq/reviewerflow/internal/models"
	"github.com/studyflowhq/reviewerflow/internal/services"
)

var (
	generatorInstance *services.GeneratorFunction
	once              sync.Once
	initErr           error
)

func init() {
	// Register the HTTP function with the framework.
	// "HandleGenerateReviewer" is the entry point name configured in GCP.
	functions.HTTP("HandleGenerateReviewer", handleGenerateReviewer)
}

// main is required by the Go Functions Framework.
func main() {}

// handleGenerateReviewer is the HTTP handler for the reviewer generation
// service.
func handleGenerateReviewer(w http.ResponseWriter, r *http.Request) {
	// Use sync.Once for robust, one-time initialization of clients.
	once.Do(func() {
		generatorInstance, initErr = services.NewGenerator(context.Background())
	})
	if initErr != nil {
		log.Printf("CRITICAL: Generator initialization failed: %v", initErr)
		writeError(w, http.StatusInternalServerError, "failed to initialize service")
		return
	}

	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("ERROR: Could not decode request body: %v", err)
		writeError(w, http.StatusBadRequest, "could not parse JSON request")
		return
	}

	res, err := generatorInstance.Process(r.Context(), &req)
	if err != nil {
		// Diagnostics are already logged inside Process; the caller gets the
		// message and the status class.
		writeError(w, services.HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Printf("ERROR: Failed to write response: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: message})
}
