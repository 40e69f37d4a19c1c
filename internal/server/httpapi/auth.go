package httpapi

import "net/http"

type registerRequest struct {
	Login    string `json:"login"`
	Salt     []byte `json:"salt"`
	Verifier []byte `json:"verifier"`
}

type userResponse struct {
	ID       string `json:"id"`
	Login    string `json:"login"`
	Username string `json:"username,omitempty"`
}

func registerHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := decodeJSON(r, &req); err != nil {
			badRequest(w, "invalid body")
			return
		}
		if req.Login == "" || len(req.Salt) == 0 || len(req.Verifier) == 0 {
			badRequest(w, "login, salt and verifier are required")
			return
		}

		user, err := d.Users.Register(r.Context(), req.Login, req.Salt, req.Verifier)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, userResponse{ID: user.ID, Login: user.Login})
	}
}

type saltRequest struct {
	Login string `json:"login"`
}

type saltResponse struct {
	Salt []byte `json:"salt"`
}

func saltHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req saltRequest
		if err := decodeJSON(r, &req); err != nil || req.Login == "" {
			badRequest(w, "login is required")
			return
		}

		salt, err := d.Users.GetSalt(r.Context(), req.Login)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, saltResponse{Salt: salt})
	}
}

type loginRequest struct {
	Login    string `json:"login"`
	Verifier []byte `json:"verifier"`
}

type tokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         userResponse `json:"user"`
}

func loginHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSON(r, &req); err != nil || req.Login == "" {
			badRequest(w, "login and verifier are required")
			return
		}

		user, pair, err := d.Users.Login(r.Context(), req.Login, req.Verifier)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tokenResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			User:         userResponse{ID: user.ID, Login: user.Login, Username: user.Username},
		})
	}
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func refreshHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req refreshRequest
		if err := decodeJSON(r, &req); err != nil || req.RefreshToken == "" {
			badRequest(w, "refresh_token is required")
			return
		}

		pair, err := d.Users.RefreshToken(r.Context(), req.RefreshToken)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tokenResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		})
	}
}

func profileHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := d.Users.Profile(r.Context(), UserID(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Login: user.Login, Username: user.Username})
	}
}

type setUsernameRequest struct {
	Username string `json:"username"`
}

func setUsernameHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setUsernameRequest
		if err := decodeJSON(r, &req); err != nil || req.Username == "" {
			badRequest(w, "username is required")
			return
		}

		if err := d.Users.SetUsername(r.Context(), UserID(r.Context()), req.Username); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"username": req.Username})
	}
}
