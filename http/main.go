package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	mvccgo "mvcc-go"
)

var db *mvccgo.DB

func init() {
	var err error
	db, err = mvccgo.OpenDB(mvccgo.DefaultOptions)
	if err != nil {
		panic(err)
	}
}

func parseTid(request *http.Request) (uint64, error) {
	return strconv.ParseUint(request.URL.Query().Get("tid"), 10, 64)
}

func handleBegin(writer http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodPost {
		http.Error(writer, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tid := db.Begin()
	_ = json.NewEncoder(writer).Encode(map[string]uint64{"tid": tid})
}

func handlePut(writer http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodPost {
		http.Error(writer, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Tid   uint64            `json:"tid"`
		Items map[string]string `json:"items"`
	}
	if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
		http.Error(writer, "bad request body", http.StatusBadRequest)
		return
	}

	for key, value := range body.Items {
		if err := db.Put(body.Tid, []byte(key), []byte(value)); err != nil {
			if err == mvccgo.ErrWriteConflict {
				http.Error(writer, err.Error(), http.StatusConflict)
			} else {
				http.Error(writer, err.Error(), http.StatusBadRequest)
			}
			return
		}
	}
}

func handleGet(writer http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodGet {
		http.Error(writer, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tid, err := parseTid(request)
	if err != nil {
		http.Error(writer, "invalid tid", http.StatusBadRequest)
		return
	}

	key := request.URL.Query().Get("key")
	value, err := db.Get(tid, []byte(key))
	if err != nil {
		http.Error(writer, err.Error(), http.StatusBadRequest)
		log.Printf("failed to get value in db: %v\n", err)
		return
	}

	if value == nil {
		http.Error(writer, "no visible value", http.StatusNotFound)
		return
	}

	_ = json.NewEncoder(writer).Encode(string(value))
}

func handleCommit(writer http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodPost {
		http.Error(writer, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tid, err := parseTid(request)
	if err != nil {
		http.Error(writer, "invalid tid", http.StatusBadRequest)
		return
	}

	ok := db.Commit(tid)
	_ = json.NewEncoder(writer).Encode(map[string]bool{"committed": ok})
}

func handleRollback(writer http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodPost {
		http.Error(writer, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tid, err := parseTid(request)
	if err != nil {
		http.Error(writer, "invalid tid", http.StatusBadRequest)
		return
	}

	db.Rollback(tid)
}

func handleVacuum(writer http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodPost {
		http.Error(writer, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	db.Vacuum()
}

func handleStat(writer http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodGet {
		http.Error(writer, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	_ = json.NewEncoder(writer).Encode(db.Stat())
}

func main() {
	http.HandleFunc("/mvcc/begin", handleBegin)
	http.HandleFunc("/mvcc/put", handlePut)
	http.HandleFunc("/mvcc/get", handleGet)
	http.HandleFunc("/mvcc/commit", handleCommit)
	http.HandleFunc("/mvcc/rollback", handleRollback)
	http.HandleFunc("/mvcc/vacuum", handleVacuum)
	http.HandleFunc("/mvcc/stat", handleStat)

	_ = http.ListenAndServe("localhost:8080", nil)
}
