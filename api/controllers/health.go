package controllers

import (
	"net/http"

	"github.com/itemstore/itemstore-backend/api/responses"
	"github.com/itemstore/itemstore-backend/pkg/config"
	"github.com/itemstore/itemstore-backend/pkg/types"
)

func Root(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Itemstore-Env", cfg.App.Env)
		responses.WriteSuccess(w, types.MessageResponse{Message: "welcome to the item store api"})
	}
}

func Health(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Itemstore-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "healthy"})
	}
}
