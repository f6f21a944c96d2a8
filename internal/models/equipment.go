package models

// Equipment is an item of the station's equipment inventory.
type Equipment struct {
	Base  `bson:",inline"`
	Type  EquipmentType `json:"type" bson:"type"`
	Name  string        `json:"name" bson:"name"`
	Specs string        `json:"specs" bson:"specs"`
	Power *string       `json:"power" bson:"power,omitempty"`
	Gain  *string       `json:"gain" bson:"gain,omitempty"`
	Bands *string       `json:"bands" bson:"bands,omitempty"`
}

type EquipmentCreate struct {
	Type  EquipmentType `json:"type" validate:"required,oneof=transceiver antenna amplifier other"`
	Name  string        `json:"name" validate:"required"`
	Specs string        `json:"specs" validate:"required"`
	Power *string       `json:"power"`
	Gain  *string       `json:"gain"`
	Bands *string       `json:"bands"`
}

func NewEquipment(c EquipmentCreate) (*Equipment, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return &Equipment{
		Type:  c.Type,
		Name:  c.Name,
		Specs: c.Specs,
		Power: c.Power,
		Gain:  c.Gain,
		Bands: c.Bands,
	}, nil
}

type EquipmentUpdate struct {
	Type  Optional[EquipmentType] `json:"type"`
	Name  Optional[string]        `json:"name"`
	Specs Optional[string]        `json:"specs"`
	Power Optional[string]        `json:"power"`
	Gain  Optional[string]        `json:"gain"`
	Bands Optional[string]        `json:"bands"`
}

func (u EquipmentUpdate) Patch() (Patch, error) {
	p, errs := newPatch(), []FieldError{}
	requiredField(&p, &errs, "type", u.Type, equipmentTypeTag)
	requiredField(&p, &errs, "name", u.Name, "")
	requiredField(&p, &errs, "specs", u.Specs, "")
	nullableField(&p, "power", u.Power)
	nullableField(&p, "gain", u.Gain)
	nullableField(&p, "bands", u.Bands)
	return finish(p, errs)
}
