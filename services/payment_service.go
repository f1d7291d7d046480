package services

import (
	"errors"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/repository"
)

var ErrPaymentMethodNotFound = errors.New("payment method not found")

// PaymentService mirrors AddressService: stored records only, no gateway.
// Same atomic one-default-per-user rule.
type PaymentService struct {
	Payments *repository.Collection[entity.PaymentMethod, *entity.PaymentMethod]
}

func NewPaymentService(colls *repository.Collections) *PaymentService {
	return &PaymentService{Payments: colls.PaymentMethods}
}

func (s *PaymentService) ListByUser(userID string) ([]entity.PaymentMethod, error) {
	all, err := s.Payments.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]entity.PaymentMethod, 0)
	for _, p := range all {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

// Create stores the method; the user's first one becomes the default. An
// incoming default demotes the previous one in the same single write.
func (s *PaymentService) Create(userID string, pm entity.PaymentMethod) (*entity.PaymentMethod, error) {
	pm.ID = repository.NewID()
	pm.UserID = userID

	err := s.Payments.Mutate(func(all []entity.PaymentMethod) ([]entity.PaymentMethod, error) {
		mine := 0
		for i := range all {
			if all[i].UserID == userID {
				mine++
				if pm.IsDefault {
					all[i].IsDefault = false
				}
			}
		}
		if mine == 0 {
			pm.IsDefault = true
		}
		return append(all, pm), nil
	})
	if err != nil {
		return nil, err
	}
	return &pm, nil
}

func (s *PaymentService) SetDefault(userID, id string) (*entity.PaymentMethod, error) {
	p, ok, err := s.Payments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !ok || p.UserID != userID {
		return nil, ErrPaymentMethodNotFound
	}
	if err := s.promoteDefault(userID, id); err != nil {
		return nil, err
	}
	p.IsDefault = true
	return p, nil
}

// Delete permits removing the last payment method (cash on delivery needs
// none); a removed default promotes the first remaining one.
func (s *PaymentService) Delete(userID, id string) error {
	return s.Payments.Mutate(func(all []entity.PaymentMethod) ([]entity.PaymentMethod, error) {
		var target *entity.PaymentMethod
		out := all[:0]
		for _, p := range all {
			if p.ID == id && p.UserID == userID {
				cp := p
				target = &cp
				continue
			}
			out = append(out, p)
		}
		if target == nil {
			return nil, ErrPaymentMethodNotFound
		}
		if target.IsDefault {
			for i := range out {
				if out[i].UserID == userID {
					out[i].IsDefault = true
					break
				}
			}
		}
		return out, nil
	})
}

func (s *PaymentService) promoteDefault(userID, id string) error {
	return s.Payments.Mutate(func(all []entity.PaymentMethod) ([]entity.PaymentMethod, error) {
		for i := range all {
			if all[i].UserID == userID {
				all[i].IsDefault = all[i].ID == id
			}
		}
		return all, nil
	})
}
