package api

import (
	"net/http"
)

func NewRouter(handler *Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/chats", handler.Chats)
	mux.HandleFunc("/chats/", handler.Conversation)
	mux.HandleFunc("/users/", handler.UserChats)
	mux.HandleFunc("/summarize", handler.Summarize)
	mux.HandleFunc("/api/health", handler.Health)

	return mux
}
