package main

import (
	"log"
	"net/http"
	"os"

	"pokereval/internal/server"
	"pokereval/internal/store"
)

func main() {
	if path := os.Getenv("EVAL_CACHE_PATH"); path != "" {
		cache, err := store.NewSQLiteStore(path)
		if err != nil {
			log.Fatalf("opening eval cache %s: %v", path, err)
		}
		defer cache.Close()
		server.Cache = cache
		log.Println("Evaluation cache enabled at", path)
	}

	log.Println("Registering handler /api/best-hand")
	http.HandleFunc("/api/best-hand", server.BestHandHandler)
	log.Println("Registering handler /api/best-wild-hand")
	http.HandleFunc("/api/best-wild-hand", server.BestWildHandHandler)
	log.Println("Registering handler /api/history")
	http.HandleFunc("/api/history", server.HistoryHandler)
	log.Println("Registering handler /ws/eval")
	http.HandleFunc("/ws/eval", server.StreamHandler)

	http.HandleFunc("/debug/clear-session", server.ClearSessionHandler)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Printf("Serving on %s...", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}
