package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/frbarbre/contacts-api/internal/http/handler"
	"github.com/frbarbre/contacts-api/internal/model"
	"github.com/frbarbre/contacts-api/internal/service"
	"github.com/frbarbre/contacts-api/internal/store"
)

const knownID = "507f1f77bcf86cd799439011"

func sampleContact() *model.Contact {
	oid, _ := primitive.ObjectIDFromHex(knownID)
	return &model.Contact{
		ID:        oid,
		Avatar:    "https://placecats.com/200/200",
		First:     "Anna",
		Last:      "Highsmith",
		Twitter:   "@anna_h",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func validBody() string {
	return `{"avatar":"https://placecats.com/200/200","first":"Anna","last":"Highsmith","twitter":"@anna_h"}`
}

var _ = Describe("ContactHandler", func() {
	var (
		contacts *mockContactService
		router   *gin.Engine
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		contacts = &mockContactService{}
		h := handler.NewContactHandler(contacts)

		router = gin.New()
		router.GET("/api/contacts", h.List)
		router.GET("/api/contacts/search", h.Search)
		router.GET("/api/contacts/:id", h.Get)
		router.POST("/api/contacts", h.Create)
		router.PUT("/api/contacts/:id", h.Update)
		router.DELETE("/api/contacts/:id", h.Delete)
		router.PATCH("/api/contacts/:id/favorite", h.ToggleFavorite)
	})

	serve := func(method, target, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, target, nil)
		} else {
			req = httptest.NewRequest(method, target, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("List", func() {
		It("returns the contacts as JSON", func() {
			contacts.listFn = func(_ context.Context) ([]model.Contact, error) {
				return []model.Contact{*sampleContact()}, nil
			}

			w := serve(http.MethodGet, "/api/contacts", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var got []map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &got)).To(Succeed())
			Expect(got).To(HaveLen(1))
			Expect(got[0]["id"]).To(Equal(knownID))
			Expect(got[0]["first"]).To(Equal("Anna"))
		})

		It("returns an empty array when there are no contacts", func() {
			contacts.listFn = func(_ context.Context) ([]model.Contact, error) {
				return []model.Contact{}, nil
			}

			w := serve(http.MethodGet, "/api/contacts", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON("[]"))
		})

		It("returns 500 when the service fails", func() {
			contacts.listFn = func(_ context.Context) ([]model.Contact, error) {
				return nil, errors.New("connection reset")
			}

			w := serve(http.MethodGet, "/api/contacts", "")
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("Get", func() {
		It("returns the contact", func() {
			contacts.getFn = func(_ context.Context, id model.ContactID) (*model.Contact, error) {
				Expect(id.Hex()).To(Equal(knownID))
				return sampleContact(), nil
			}

			w := serve(http.MethodGet, "/api/contacts/"+knownID, "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var got map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &got)).To(Succeed())
			Expect(got["id"]).To(Equal(knownID))
			Expect(got["twitter"]).To(Equal("@anna_h"))
		})

		It("returns 404 for a malformed id without touching the service", func() {
			called := false
			contacts.getFn = func(_ context.Context, _ model.ContactID) (*model.Contact, error) {
				called = true
				return sampleContact(), nil
			}

			w := serve(http.MethodGet, "/api/contacts/not-an-id", "")
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(called).To(BeFalse())
		})

		It("returns 404 for an unknown id", func() {
			contacts.getFn = func(_ context.Context, _ model.ContactID) (*model.Contact, error) {
				return nil, store.ErrNotFound
			}

			w := serve(http.MethodGet, "/api/contacts/"+knownID, "")
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Body.String()).To(MatchJSON(`{"error":"contact not found"}`))
		})
	})

	Describe("Create", func() {
		It("returns 201 with the created contact", func() {
			contacts.createFn = func(_ context.Context, params service.ContactParams) (*model.Contact, error) {
				Expect(params.First).To(Equal("Anna"))
				Expect(params.Favorite).To(BeFalse())
				return sampleContact(), nil
			}

			w := serve(http.MethodPost, "/api/contacts", validBody())
			Expect(w.Code).To(Equal(http.StatusCreated))

			var got map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &got)).To(Succeed())
			Expect(got["id"]).To(Equal(knownID))
		})

		It("returns 400 on a malformed body", func() {
			w := serve(http.MethodPost, "/api/contacts", "{not json")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(MatchJSON(`{"error":"invalid request body"}`))
		})

		It("returns the field-error map on validation failure", func() {
			w := serve(http.MethodPost, "/api/contacts", `{"avatar":"nope","first":"Anna","last":"Highsmith","twitter":"@anna_h"}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))

			var got struct {
				Errors map[string][]string `json:"errors"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &got)).To(Succeed())
			Expect(got.Errors).To(HaveKey("avatar"))
			Expect(got.Errors["avatar"]).To(ContainElement("must be a valid URL"))
		})

		It("reports every invalid field at once", func() {
			w := serve(http.MethodPost, "/api/contacts", `{}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))

			var got struct {
				Errors map[string][]string `json:"errors"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &got)).To(Succeed())
			Expect(got.Errors).To(HaveKey("avatar"))
			Expect(got.Errors).To(HaveKey("first"))
			Expect(got.Errors).To(HaveKey("last"))
			Expect(got.Errors).To(HaveKey("twitter"))
		})
	})

	Describe("Update", func() {
		It("returns the updated contact", func() {
			contacts.updateFn = func(_ context.Context, id model.ContactID, params service.ContactParams) (*model.Contact, error) {
				Expect(id.Hex()).To(Equal(knownID))
				Expect(params.Last).To(Equal("Highsmith"))
				return sampleContact(), nil
			}

			w := serve(http.MethodPut, "/api/contacts/"+knownID, validBody())
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("returns 404 when nothing was modified", func() {
			contacts.updateFn = func(_ context.Context, _ model.ContactID, _ service.ContactParams) (*model.Contact, error) {
				return nil, store.ErrNotFound
			}

			w := serve(http.MethodPut, "/api/contacts/"+knownID, validBody())
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("validates before calling the service", func() {
			called := false
			contacts.updateFn = func(_ context.Context, _ model.ContactID, _ service.ContactParams) (*model.Contact, error) {
				called = true
				return sampleContact(), nil
			}

			w := serve(http.MethodPut, "/api/contacts/"+knownID, `{}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(called).To(BeFalse())
		})
	})

	Describe("Delete", func() {
		It("returns 204 with no body", func() {
			contacts.deleteFn = func(_ context.Context, id model.ContactID) error {
				Expect(id.Hex()).To(Equal(knownID))
				return nil
			}

			w := serve(http.MethodDelete, "/api/contacts/"+knownID, "")
			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(w.Body.Len()).To(BeZero())
		})

		It("returns 404 for an unknown id", func() {
			contacts.deleteFn = func(_ context.Context, _ model.ContactID) error {
				return store.ErrNotFound
			}

			w := serve(http.MethodDelete, "/api/contacts/"+knownID, "")
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Search", func() {
		It("passes the query through to the service", func() {
			var query string
			contacts.searchFn = func(_ context.Context, q string) ([]model.Contact, error) {
				query = q
				return []model.Contact{*sampleContact()}, nil
			}

			w := serve(http.MethodGet, "/api/contacts/search?q=ann", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(query).To(Equal("ann"))
		})

		It("searches with an empty query when q is absent", func() {
			var query string
			contacts.searchFn = func(_ context.Context, q string) ([]model.Contact, error) {
				query = q
				return []model.Contact{}, nil
			}

			w := serve(http.MethodGet, "/api/contacts/search", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(query).To(BeEmpty())
		})
	})

	Describe("ToggleFavorite", func() {
		It("returns the contact with the flipped flag", func() {
			contacts.toggleFavoriteFn = func(_ context.Context, id model.ContactID) (*model.Contact, error) {
				Expect(id.Hex()).To(Equal(knownID))
				contact := sampleContact()
				contact.Favorite = true
				return contact, nil
			}

			w := serve(http.MethodPatch, "/api/contacts/"+knownID+"/favorite", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var got map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &got)).To(Succeed())
			Expect(got["favorite"]).To(BeTrue())
		})

		It("returns 404 for an unknown id", func() {
			contacts.toggleFavoriteFn = func(_ context.Context, _ model.ContactID) (*model.Contact, error) {
				return nil, store.ErrNotFound
			}

			w := serve(http.MethodPatch, "/api/contacts/"+knownID+"/favorite", "")
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
