package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"haven/internal/detail"
	"haven/internal/render"
	"haven/internal/session"
	"haven/internal/spots"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var errInvalidSpotID = errors.New("invalid spot ID")

func parseSpotID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "spotID"), 10, 64)
	if err != nil || id < 1 {
		return 0, errInvalidSpotID
	}
	return id, nil
}

// loadView runs one full load cycle for the request's spot and viewer.
func (app *application) loadView(r *http.Request, spotID int64) detail.View {
	ctrl := detail.NewController(app.loader, app.logger)
	view := ctrl.Navigate(r.Context(), spotID, getUserFromContext(r))
	spotLoads.Add(view.Status.String(), 1)
	return view
}

func (app *application) renderPage(w http.ResponseWriter, r *http.Request, status int, page render.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if page.View.Status == detail.StatusNotFound {
		status = http.StatusNotFound
	}

	// Rendering is buffered, so on failure nothing has been written yet.
	var buf strings.Builder
	if err := app.renderer.SpotDetail(&buf, page); err != nil {
		app.logger.Errorw("render failed", "path", r.URL.Path, "error", err.Error())
		http.Error(w, "the server encountered a problem", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	fmt.Fprint(w, buf.String())
}

func (app *application) spotDetailPageHandler(w http.ResponseWriter, r *http.Request) {
	spotID, err := parseSpotID(r)
	if err != nil {
		app.renderPage(w, r, http.StatusNotFound, render.Page{View: detail.View{Status: detail.StatusNotFound}})
		return
	}

	view := app.loadView(r, spotID)

	page := render.Page{
		View:    view,
		User:    getUserFromContext(r),
		Reserve: r.URL.Query().Get("reserve") == "1",
	}
	if r.URL.Query().Get("review") == "open" && view.CanReview {
		page.Dialog = detail.OpenDialog()
	}

	app.renderPage(w, r, http.StatusOK, page)
}

func (app *application) submitReviewFormHandler(w http.ResponseWriter, r *http.Request) {
	spotID, err := parseSpotID(r)
	if err != nil {
		app.renderPage(w, r, http.StatusNotFound, render.Page{View: detail.View{Status: detail.StatusNotFound}})
		return
	}
	pageURL := fmt.Sprintf("/spots/%d", spotID)

	user := getUserFromContext(r)
	if user == nil {
		http.Redirect(w, r, pageURL, http.StatusSeeOther)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64<<10)
	if err := r.ParseForm(); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	stars, _ := strconv.Atoi(r.PostForm.Get("stars"))
	input := detail.ReviewInput{Review: r.PostForm.Get("review"), Stars: stars}

	ctx := spots.WithBearer(r.Context(), session.TokenFromContext(r.Context()))
	if _, err := app.submitter.Submit(ctx, spotID, user, input); err != nil {
		reviewPosts.Add("failed", 1)

		view := app.loadView(r, spotID)
		page := render.Page{View: view, User: user}
		if view.CanReview {
			page.Dialog = detail.Dialog{}.Reopen(input, errors.New(reviewErrorMessage(err)))
		} else {
			page.Notice = reviewErrorMessage(err)
		}
		app.renderPage(w, r, submitErrorStatus(err), page)
		return
	}

	reviewPosts.Add("created", 1)
	http.Redirect(w, r, pageURL, http.StatusSeeOther)
}

// getSpotDetailHandler godoc
//
//	@Summary		Spot detail view
//	@Description	Loads a spot and its reviews and returns the derived detail view for the current viewer
//	@Tags			spots
//	@Produce		json
//	@Param			spotID	path		int			true	"Spot ID"
//	@Success		200		{object}	detail.View	"Detail view"
//	@Failure		400		{object}	error		"Invalid spot ID"
//	@Failure		404		{object}	error		"Spot not found"
//	@Security		ApiKeyAuth
//	@Router			/spots/{spotID} [get]
func (app *application) getSpotDetailHandler(w http.ResponseWriter, r *http.Request) {
	spotID, err := parseSpotID(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	view := app.loadView(r, spotID)
	if view.Status != detail.StatusLoaded {
		app.notFoundResponse(w, r, fmt.Errorf("spot %d could not be loaded", spotID))
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, view); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createReviewHandler godoc
//
//	@Summary		Post a review
//	@Description	Creates a review for the spot on behalf of the signed-in user. Owners and users who already reviewed the spot are refused.
//	@Tags			spots
//	@Accept			json
//	@Produce		json
//	@Param			spotID	path		int					true	"Spot ID"
//	@Param			payload	body		detail.ReviewInput	true	"Review text and star rating"
//	@Success		201		{object}	spots.Review		"Created review"
//	@Failure		400		{object}	error				"Invalid payload"
//	@Failure		401		{object}	error				"Unauthorized"
//	@Failure		403		{object}	error				"Not allowed to review this spot, or cross-site request"
//	@Failure		404		{object}	error				"Spot not found"
//	@Failure		415		{object}	error				"Body is not application/json"
//	@Failure		502		{object}	error				"Spots service error"
//	@Security		ApiKeyAuth
//	@Router			/spots/{spotID}/reviews [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	spotID, err := parseSpotID(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload detail.ReviewInput
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := spots.WithBearer(r.Context(), session.TokenFromContext(r.Context()))
	created, err := app.submitter.Submit(ctx, spotID, getUserFromContext(r), payload)
	if err != nil {
		reviewPosts.Add("failed", 1)

		var verrs validator.ValidationErrors
		var statusErr *spots.StatusError
		switch {
		case errors.As(err, &verrs):
			app.badRequestResponse(w, r, errors.New(reviewErrorMessage(err)))
		case errors.Is(err, detail.ErrSignInRequired):
			app.unauthorizedErrorResponse(w, r, err)
		case errors.Is(err, detail.ErrNotEligible):
			app.forbiddenResponse(w, r, err)
		case errors.Is(err, spots.ErrNotFound):
			app.notFoundResponse(w, r, err)
		case errors.As(err, &statusErr):
			app.badGatewayResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	reviewPosts.Add("created", 1)
	if err := app.jsonResponse(w, http.StatusCreated, created); err != nil {
		app.internalServerError(w, r, err)
	}
}

func submitErrorStatus(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return http.StatusUnprocessableEntity
	case errors.Is(err, detail.ErrNotEligible):
		return http.StatusForbidden
	case errors.Is(err, spots.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// reviewErrorMessage turns a submission error into text for the review form.
func reviewErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		if errors.Is(err, detail.ErrNotEligible) || errors.Is(err, detail.ErrSignInRequired) {
			return err.Error()
		}
		return "We couldn't post your review. Please try again."
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "Stars":
			msgs = append(msgs, "Pick a star rating from 1 to 5")
		case "Review":
			switch fe.Tag() {
			case "max":
				msgs = append(msgs, "Review must be at most 1000 characters")
			default:
				msgs = append(msgs, "Review must be at least 10 characters")
			}
		default:
			msgs = append(msgs, fe.Error())
		}
	}
	return strings.Join(msgs, ". ")
}
