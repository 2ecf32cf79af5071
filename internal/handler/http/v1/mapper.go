package v1

import "github.com/shenikar/location_sharing_system/internal/models"

// DTOToIncidentModel преобразует DTO создания в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		Latitude:    *dto.Latitude,
		Longitude:   *dto.Longitude,
		Type:        dto.Type,
		Description: dto.Description,
		Severity:    dto.Severity,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:             model.ID,
		Latitude:       model.Latitude,
		Longitude:      model.Longitude,
		Type:           model.Type,
		Description:    model.Description,
		Severity:       model.Severity,
		CreatedAt:      model.CreatedAt,
		DistanceMeters: model.DistanceMeters,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToUserResponse преобразует пользователя в публичный DTO
func ModelToUserResponse(model *models.User) UserResponse {
	return UserResponse{
		ID:    model.ID,
		Email: model.Email,
	}
}
