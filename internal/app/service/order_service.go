package service

import (
	"errors"

	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/internal/app/repository"
	"github.com/ekaracan/kitapkurdu/pkg/logger"
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

type OrderService interface {
	CustomerOrders(customerID uint) ([]model.OrderSummary, error)
	AllOrders() ([]model.OrderSummary, error)
	UpdateStatus(orderID uint, status model.OrderStatus) error
}

type orderService struct {
	gateway repository.ProcGateway
}

func NewOrderService(gateway repository.ProcGateway) OrderService {
	return &orderService{gateway: gateway}
}

func (s *orderService) CustomerOrders(customerID uint) ([]model.OrderSummary, error) {
	details, err := s.gateway.ListOrderDetails(customerID)
	if err != nil {
		return nil, err
	}
	return groupOrderDetails(details), nil
}

func (s *orderService) AllOrders() ([]model.OrderSummary, error) {
	details, err := s.gateway.ListAllOrderDetails()
	if err != nil {
		return nil, err
	}
	return groupOrderDetails(details), nil
}

func (s *orderService) UpdateStatus(orderID uint, status model.OrderStatus) error {
	if !model.ValidOrderStatus(status) {
		return ErrInvalidOrderStatus
	}

	if err := s.gateway.UpdateOrderStatus(orderID, status); err != nil {
		return err
	}

	logger.Info("Order status updated", map[string]interface{}{
		"order_id": orderID,
		"status":   status,
	})
	return nil
}

// groupOrderDetails folds flat view rows into one summary per order,
// preserving the newest-first ordering of the input.
func groupOrderDetails(details []model.OrderDetail) []model.OrderSummary {
	var summaries []model.OrderSummary
	index := make(map[uint]int)

	for _, detail := range details {
		pos, seen := index[detail.OrderID]
		if !seen {
			summaries = append(summaries, model.OrderSummary{
				OrderID:           detail.OrderID,
				OrderDate:         detail.OrderDate,
				CustomerName:      detail.CustomerName,
				Status:            detail.Status,
				EstimatedDelivery: detail.EstimatedDelivery,
			})
			pos = len(summaries) - 1
			index[detail.OrderID] = pos
		}
		summaries[pos].Items = append(summaries[pos].Items, detail)
		summaries[pos].GrandTotal += detail.TotalAmount
	}
	return summaries
}
