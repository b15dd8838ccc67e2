package handlers

import (
	"github.com/google/uuid"

	"service-dispatch/internal/domain"
	"service-dispatch/internal/service/delivery"
)

func (r createDeliveryRequest) toInput(customerID uuid.UUID) delivery.CreateInput {
	in := delivery.CreateInput{
		CustomerID:       customerID,
		PickupAddress:    r.PickupAddress,
		DeliveryAddress:  r.DeliveryAddress,
		Price:            r.Price,
		Description:      r.Description,
		EstimatedMinutes: r.EstimatedMinutes,
		Policy:           delivery.AssignmentPolicy(r.Policy),
	}
	if r.PickupPoint != nil {
		in.PickupPoint = &domain.Point{Lat: r.PickupPoint.Lat, Lon: r.PickupPoint.Lon}
	}
	return in
}

func deliveryToResponse(d domain.Delivery) deliveryDTO {
	out := deliveryDTO{
		ID:                    d.ID,
		CustomerID:            d.CustomerID,
		DriverID:              d.DriverID,
		PickupAddress:         d.PickupAddress,
		DeliveryAddress:       d.DeliveryAddress,
		Price:                 d.Price.StringFixed(2),
		Status:                d.Status,
		Description:           d.Description,
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
		PickedUpAt:            d.PickedUpAt,
		DeliveredAt:           d.DeliveredAt,
		EstimatedDeliveryTime: d.EstimatedDeliveryTime,
	}
	if d.PickupPoint != nil {
		out.PickupPoint = &pointDTO{Lat: d.PickupPoint.Lat, Lon: d.PickupPoint.Lon}
	}
	return out
}

func viewToResponse(v domain.DeliveryView) deliveryDTO {
	out := deliveryToResponse(v.Delivery)
	if v.DriverLocation != nil {
		loc := locationToResponse(*v.DriverLocation)
		out.DriverLocation = &loc
	}
	return out
}

func pageToResponse(p domain.DeliveryPage) deliveryPageDTO {
	items := make([]deliveryDTO, 0, len(p.Items))
	for _, d := range p.Items {
		items = append(items, deliveryToResponse(d))
	}
	return deliveryPageDTO{Items: items, Total: p.Total, Limit: p.Limit, Offset: p.Offset}
}

func (r locationRequest) toReport(driverID uuid.UUID) domain.LocationReport {
	rep := domain.LocationReport{DriverID: driverID, Speed: r.Speed, Heading: r.Heading}
	if r.Latitude != nil {
		rep.Latitude = *r.Latitude
	}
	if r.Longitude != nil {
		rep.Longitude = *r.Longitude
	}
	return rep
}

func locationToResponse(l domain.DriverLocation) locationDTO {
	return locationDTO{
		DriverID:  l.DriverID,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Speed:     l.Speed,
		Heading:   l.Heading,
		Available: l.Available,
		UpdatedAt: l.UpdatedAt,
	}
}

func locationsToResponse(list []domain.DriverLocation) []locationDTO {
	out := make([]locationDTO, 0, len(list))
	for _, l := range list {
		out = append(out, locationToResponse(l))
	}
	return out
}

func fareToResponse(f domain.FareResult) fareDTO {
	return fareDTO{
		Total:        f.Total.StringFixed(2),
		DriverAmount: f.DriverAmount.StringFixed(2),
		PlatformFee:  f.PlatformFee.StringFixed(2),
	}
}
