package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/barrabusiness/lead_management_system/backend/notify"
)

// LeadBadge reports whether unseen leads exist, for the navigation badge.
func LeadBadge(leads *notify.LeadSignal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hasNew, err := leads.HasNew(r.Context())
		if err != nil {
			log.Printf("Error reading lead flag: %v", err)
			http.Error(w, "Error reading lead flag", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"hasNewLeads": hasNew})
	}
}

// LeadEvents streams a server-sent event per new lead so the badge can
// light up without polling. The stream ends when the client disconnects.
func LeadEvents(leads *notify.LeadSignal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		sub := leads.Subscribe(r.Context())
		defer sub.Close()

		if hasNew, err := leads.HasNew(r.Context()); err == nil && hasNew {
			fmt.Fprint(w, "event: new-lead\ndata: 1\n\n")
			flusher.Flush()
		}

		ch := sub.Channel()
		for {
			select {
			case <-r.Context().Done():
				return
			case msg, open := <-ch:
				if !open {
					return
				}
				fmt.Fprintf(w, "event: new-lead\ndata: %s\n\n", msg.Payload)
				flusher.Flush()
			}
		}
	}
}
