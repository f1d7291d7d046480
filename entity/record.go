package entity

// Base is embedded by every stored record. The repository generates and
// assigns ID on create; callers never set it themselves.
type Base struct {
	ID string `json:"id"`
}

func (b *Base) RecordID() string      { return b.ID }
func (b *Base) SetRecordID(id string) { b.ID = id }
