package handler

import (
	"net/http"

	"github.com/campusmeet/sportsapp/assets"
)

func serveAsset(w http.ResponseWriter, r *http.Request, name string) {
	http.ServeFileFS(w, r, assets.PublicFS, "public/"+name)
}
