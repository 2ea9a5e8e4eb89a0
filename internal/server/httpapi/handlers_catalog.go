package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/grafibook/automotora/internal/common"
	"github.com/grafibook/automotora/internal/server/models"
)

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad id", common.ErrorValidation)
	}
	return id, nil
}

// --- cars ---

func (s *Server) listCarsHandler(w http.ResponseWriter, r *http.Request) {
	cars, err := s.catalog.ListCars(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

func (s *Server) getCarHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	car, err := s.catalog.GetCar(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (s *Server) createCarHandler(w http.ResponseWriter, r *http.Request) {
	var car models.Car
	if err := decodeJSON(r, &car); err != nil {
		s.writeError(w, r, err)
		return
	}
	created, err := s.catalog.CreateCar(r.Context(), &car)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateCarHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var car models.Car
	if err := decodeJSON(r, &car); err != nil {
		s.writeError(w, r, err)
		return
	}
	car.ID = id
	updated, err := s.catalog.UpdateCar(r.Context(), &car)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteCarHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.catalog.DeleteCar(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- products ---

func (s *Server) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.ListProducts(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *Server) getProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	product, err := s.catalog.GetProduct(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (s *Server) createProductHandler(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := decodeJSON(r, &product); err != nil {
		s.writeError(w, r, err)
		return
	}
	created, err := s.catalog.CreateProduct(r.Context(), &product)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) deleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.catalog.DeleteProduct(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- services ---

func (s *Server) listServicesHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.ListServices(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) getServiceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	item, err := s.catalog.GetService(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) createServiceHandler(w http.ResponseWriter, r *http.Request) {
	var item models.Service
	if err := decodeJSON(r, &item); err != nil {
		s.writeError(w, r, err)
		return
	}
	created, err := s.catalog.CreateService(r.Context(), &item)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateServiceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var item models.Service
	if err := decodeJSON(r, &item); err != nil {
		s.writeError(w, r, err)
		return
	}
	item.ID = id
	updated, err := s.catalog.UpdateService(r.Context(), &item)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteServiceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.catalog.DeleteService(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- sales ---

func (s *Server) listSalesHandler(w http.ResponseWriter, r *http.Request) {
	sales, err := s.catalog.ListSales(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sales)
}

func (s *Server) createSaleHandler(w http.ResponseWriter, r *http.Request) {
	var sale models.Sale
	if err := decodeJSON(r, &sale); err != nil {
		s.writeError(w, r, err)
		return
	}
	created, err := s.catalog.CreateSale(r.Context(), &sale)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) deleteSaleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.catalog.DeleteSale(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- team ---

func (s *Server) listTeamHandler(w http.ResponseWriter, r *http.Request) {
	team, err := s.catalog.ListTeam(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, team)
}

func (s *Server) createTeamMemberHandler(w http.ResponseWriter, r *http.Request) {
	var member models.TeamMember
	if err := decodeJSON(r, &member); err != nil {
		s.writeError(w, r, err)
		return
	}
	created, err := s.catalog.CreateTeamMember(r.Context(), &member)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateTeamMemberHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var member models.TeamMember
	if err := decodeJSON(r, &member); err != nil {
		s.writeError(w, r, err)
		return
	}
	member.ID = id
	updated, err := s.catalog.UpdateTeamMember(r.Context(), &member)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteTeamMemberHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.catalog.DeleteTeamMember(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- about us ---

func (s *Server) getAboutUsHandler(w http.ResponseWriter, r *http.Request) {
	content, err := s.catalog.GetAboutUs(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, content)
}

func (s *Server) createAboutUsHandler(w http.ResponseWriter, r *http.Request) {
	var content models.AboutUs
	if err := decodeJSON(r, &content); err != nil {
		s.writeError(w, r, err)
		return
	}
	created, err := s.catalog.CreateAboutUs(r.Context(), &content)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateAboutUsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var content models.AboutUs
	if err := decodeJSON(r, &content); err != nil {
		s.writeError(w, r, err)
		return
	}
	content.ID = id
	updated, err := s.catalog.UpdateAboutUs(r.Context(), &content)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteAboutUsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.catalog.DeleteAboutUs(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- messages ---

func (s *Server) sendMessageHandler(w http.ResponseWriter, r *http.Request) {
	var message models.Message
	if err := decodeJSON(r, &message); err != nil {
		s.writeError(w, r, err)
		return
	}
	created, err := s.catalog.CreateMessage(r.Context(), &message)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) listMessagesHandler(w http.ResponseWriter, r *http.Request) {
	messages, err := s.catalog.ListMessages(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (s *Server) getMessageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	message, err := s.catalog.GetMessage(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, message)
}

func (s *Server) updateMessageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var message models.Message
	if err := decodeJSON(r, &message); err != nil {
		s.writeError(w, r, err)
		return
	}
	message.ID = id
	updated, err := s.catalog.UpdateMessage(r.Context(), &message)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteMessageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.catalog.DeleteMessage(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- uploads ---

type presignResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

func (s *Server) presignUploadHandler(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	key, url, err := s.images.PresignUpload(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "upload url issued", "key", key, "user_id", claims.UserID)
	writeJSON(w, http.StatusCreated, presignResponse{Key: key, URL: url})
}
