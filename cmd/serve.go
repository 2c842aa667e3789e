package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/halfdim/progen/constants"
	"github.com/halfdim/progen/db"
	"github.com/halfdim/progen/model"
	"github.com/halfdim/progen/narration"
	"github.com/halfdim/progen/progression"
	"github.com/halfdim/progen/theory"
	"github.com/halfdim/progen/timeline"
	"github.com/halfdim/progen/util"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves drills over HTTP",
	Long:  `Serves drills over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

var (
	historyMu      sync.Mutex
	pendingHistory []model.DrillRecord
	flushHistory   = debounce.New(2 * time.Second)
)

// recordDrill buffers history writes so a burst of requests turns into one
// debounced DynamoDB flush.
func recordDrill(rec model.DrillRecord) {
	if !constants.HistoryEnabled() {
		return
	}
	historyMu.Lock()
	pendingHistory = append(pendingHistory, rec)
	historyMu.Unlock()

	flushHistory(func() {
		historyMu.Lock()
		records := pendingHistory
		pendingHistory = nil
		historyMu.Unlock()
		if err := db.PutDrills(records); err != nil {
			fmt.Printf("Could not record drill history: %v\n", err)
		}
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

// HandleDrill generates one drill per request. Exported so tests can hit it
// through httptest.
func HandleDrill(w http.ResponseWriter, r *http.Request) {
	var input model.DrillRequest
	if r.Body != nil {
		// an empty or absent body means all defaults
		json.NewDecoder(r.Body).Decode(&input)
	}

	gen := progression.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))

	keyName := input.Key
	var tonic uint8
	if keyName == "" {
		keyName, tonic = gen.RandomKey()
	} else {
		t, ok := theory.KeyTonics[keyName]
		if !ok {
			keys := util.GetKeys(theory.KeyTonics)
			sort.Strings(keys)
			writeError(w, 400, "unknown key "+keyName+", expected one of: "+strings.Join(keys, " "))
			return
		}
		tonic = t
	}

	var prog model.Progression
	var err error
	if input.Length == 0 {
		prog, err = gen.GenerateRandom()
	} else {
		prog, err = gen.Generate(input.Length)
	}
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	text, err := narration.Text(prog)
	if err != nil {
		writeError(w, 500, err.Error())
		return
	}

	tl, err := timeline.Build(prog, tonic, timeline.DefaultParams())
	if err != nil {
		writeError(w, 500, err.Error())
		return
	}

	recordDrill(model.DrillRecord{
		Id:          uuid.New().String(),
		Key:         keyName,
		Progression: strings.Join(prog, " "),
		Narration:   text,
		TotalTicks:  timeline.TotalTicks(tl),
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.DrillResponse{
		Key:         keyName,
		Tonic:       tonic,
		Progression: prog,
		Narration:   text,
		TotalTicks:  timeline.TotalTicks(tl),
		Events:      tl.Events,
	})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/drill", HandleDrill).Methods("POST")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}
