package services

import (
	"errors"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/repository"
)

var (
	ErrAddressNotFound = errors.New("address not found")
	// ErrLastAddress: a user must always keep at least one address. The
	// repository itself permits the delete; the rule lives here.
	ErrLastAddress = errors.New("cannot remove the only address")
)

// AddressService keeps the one-default-per-user invariant by rewriting the
// whole collection in a single store write whenever defaults move.
type AddressService struct {
	Addresses *repository.Collection[entity.Address, *entity.Address]
}

func NewAddressService(colls *repository.Collections) *AddressService {
	return &AddressService{Addresses: colls.Addresses}
}

// ListByUser returns the user's delivery addresses. Restaurant addresses
// live in the same collection and are filtered out.
func (s *AddressService) ListByUser(userID string) ([]entity.Address, error) {
	all, err := s.Addresses.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]entity.Address, 0)
	for _, a := range all {
		if a.UserID == userID && !a.IsRestaurantAddress {
			out = append(out, a)
		}
	}
	return out, nil
}

// Create stores the address; the user's first address becomes the default.
// An incoming default demotes the previous one in the same single write,
// so a crash can never leave two defaults behind.
func (s *AddressService) Create(userID string, addr entity.Address) (*entity.Address, error) {
	addr.ID = repository.NewID()
	addr.UserID = userID
	addr.RestaurantID = ""
	addr.IsRestaurantAddress = false

	err := s.Addresses.Mutate(func(all []entity.Address) ([]entity.Address, error) {
		mine := 0
		for i := range all {
			if all[i].UserID == userID && !all[i].IsRestaurantAddress {
				mine++
				if addr.IsDefault {
					all[i].IsDefault = false
				}
			}
		}
		if mine == 0 {
			addr.IsDefault = true
		}
		return append(all, addr), nil
	})
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

// Update shallow-merges the patch. A patch that turns the address into
// the default demotes the previous one in the same write.
func (s *AddressService) Update(userID, id string, patch map[string]any) (*entity.Address, error) {
	delete(patch, "userId")
	delete(patch, "isRestaurantAddress")

	var updated entity.Address
	err := s.Addresses.Mutate(func(all []entity.Address) ([]entity.Address, error) {
		idx := -1
		for i := range all {
			if all[i].ID == id && all[i].UserID == userID && !all[i].IsRestaurantAddress {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, ErrAddressNotFound
		}
		merged, err := repository.Merge(all[idx], patch)
		if err != nil {
			return nil, err
		}
		merged.ID = id
		merged.UserID = userID
		merged.IsRestaurantAddress = false
		if merged.IsDefault && !all[idx].IsDefault {
			for i := range all {
				if i != idx && all[i].UserID == userID && !all[i].IsRestaurantAddress {
					all[i].IsDefault = false
				}
			}
		}
		all[idx] = merged
		updated = merged
		return all, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetDefault promotes one address and demotes the rest atomically (one
// collection rewrite, never two independent writes).
func (s *AddressService) SetDefault(userID, id string) (*entity.Address, error) {
	a, ok, err := s.Addresses.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !ok || a.UserID != userID || a.IsRestaurantAddress {
		return nil, ErrAddressNotFound
	}
	if err := s.promoteDefault(userID, id); err != nil {
		return nil, err
	}
	a.IsDefault = true
	return a, nil
}

// Delete rejects removing the user's only address. When the default goes,
// the first remaining address is promoted in the same rewrite.
func (s *AddressService) Delete(userID, id string) error {
	mine, err := s.ListByUser(userID)
	if err != nil {
		return err
	}
	var target *entity.Address
	for i := range mine {
		if mine[i].ID == id {
			target = &mine[i]
			break
		}
	}
	if target == nil {
		return ErrAddressNotFound
	}
	if len(mine) == 1 {
		return ErrLastAddress
	}

	return s.Addresses.Mutate(func(all []entity.Address) ([]entity.Address, error) {
		out := all[:0]
		for _, a := range all {
			if a.ID != id {
				out = append(out, a)
			}
		}
		if target.IsDefault {
			for i := range out {
				if out[i].UserID == userID && !out[i].IsRestaurantAddress {
					out[i].IsDefault = true
					break
				}
			}
		}
		return out, nil
	})
}

func (s *AddressService) promoteDefault(userID, id string) error {
	return s.Addresses.Mutate(func(all []entity.Address) ([]entity.Address, error) {
		for i := range all {
			if all[i].UserID == userID && !all[i].IsRestaurantAddress {
				all[i].IsDefault = all[i].ID == id
			}
		}
		return all, nil
	})
}
