package dto

// NearbySearchRequest - поиск учреждений вокруг точки
type NearbySearchRequest struct {
	Lat    *float64 `json:"lat" validate:"required"`
	Lon    *float64 `json:"lon" validate:"required"`
	Radius *int     `json:"radius,omitempty"` // метры; nil - радиус по умолчанию
	Query  string   `json:"q,omitempty"`
}

// NameSearchRequest - поиск учреждений по названию вокруг точки
type NameSearchRequest struct {
	Name   string   `json:"name" validate:"required,min=2"`
	Lat    *float64 `json:"lat" validate:"required"`
	Lon    *float64 `json:"lon" validate:"required"`
	Radius *int     `json:"radius,omitempty"`
}

// DetailsRequest - получение сырого элемента OSM
type DetailsRequest struct {
	Kind string `json:"kind" validate:"required,oneof=node way"`
	ID   int64  `json:"id" validate:"required,min=1"`
}

// PointDTO - точка с обязательными координатами
type PointDTO struct {
	Lat *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lon *float64 `json:"lon" validate:"required,min=-180,max=180"`
}

// DistanceRequest - расстояние между двумя точками
type DistanceRequest struct {
	From PointDTO `json:"from" validate:"required"`
	To   PointDTO `json:"to" validate:"required"`
}
