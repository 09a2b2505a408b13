package label

// Field is one nutrition attribute read from a label as a (value, unit) pair.
// Both pointers are nil when the field could not be recovered; Unit is set
// whenever Value is set (falling back to the field's canonical unit).
type Field struct {
	Value *float64 `json:"value"`
	Unit  *string  `json:"unit"`
}

// Present reports whether a value was recovered for this field.
func (f Field) Present() bool { return f.Value != nil }

// FieldID names one extractable nutrition attribute.
type FieldID string

const (
	Calories      FieldID = "calories"
	Carbohydrates FieldID = "carbohydrates"
	Sugar         FieldID = "sugar"
	Protein       FieldID = "protein"
	Fat           FieldID = "fat"
	SaturatedFat  FieldID = "saturated_fat"
	TransFat      FieldID = "trans_fat"
	Cholesterol   FieldID = "cholesterol"
	Sodium        FieldID = "sodium"
)

// FieldIDs lists every numeric field in a stable order.
var FieldIDs = []FieldID{
	Calories, Carbohydrates, Sugar, Protein, Fat,
	SaturatedFat, TransFat, Cholesterol, Sodium,
}

// Record is the structured result of analyzing one label text. Absent fields
// serialize as nulls. A Record is never mutated after Analyze returns it;
// Merge builds a fresh one.
type Record struct {
	Calories      Field    `json:"calories"`
	Carbohydrates Field    `json:"carbohydrates"`
	Sugar         Field    `json:"sugar"`
	Protein       Field    `json:"protein"`
	Fat           Field    `json:"fat"`
	SaturatedFat  Field    `json:"saturated_fat"`
	TransFat      Field    `json:"trans_fat"`
	Cholesterol   Field    `json:"cholesterol"`
	Sodium        Field    `json:"sodium"`
	ServingSize   *string  `json:"serving_size"`
	Allergens     []string `json:"allergens"`
}

// Get returns the field for id (zero Field for an unknown id).
func (r *Record) Get(id FieldID) Field {
	if p := r.fieldRef(id); p != nil {
		return *p
	}
	return Field{}
}

func (r *Record) fieldRef(id FieldID) *Field {
	switch id {
	case Calories:
		return &r.Calories
	case Carbohydrates:
		return &r.Carbohydrates
	case Sugar:
		return &r.Sugar
	case Protein:
		return &r.Protein
	case Fat:
		return &r.Fat
	case SaturatedFat:
		return &r.SaturatedFat
	case TransFat:
		return &r.TransFat
	case Cholesterol:
		return &r.Cholesterol
	case Sodium:
		return &r.Sodium
	}
	return nil
}

// Set stores a value and unit for id. Unknown ids are ignored.
func (r *Record) Set(id FieldID, value float64, unit string) {
	r.setField(id, value, unit)
}

func (r *Record) setField(id FieldID, value float64, unit string) {
	if p := r.fieldRef(id); p != nil {
		v := value
		u := unit
		p.Value = &v
		p.Unit = &u
	}
}

// Merge combines two records field-wise: primary's value wins whenever it is
// present, secondary fills the gaps. Allergens and serving size follow the
// same rule. Inputs are left untouched.
func Merge(primary, secondary *Record) *Record {
	out := &Record{}
	if primary == nil {
		primary = &Record{}
	}
	if secondary == nil {
		secondary = &Record{}
	}
	for _, id := range FieldIDs {
		f := primary.Get(id)
		if !f.Present() {
			f = secondary.Get(id)
		}
		if f.Present() {
			out.setField(id, *f.Value, *f.Unit)
		}
	}
	if primary.ServingSize != nil {
		s := *primary.ServingSize
		out.ServingSize = &s
	} else if secondary.ServingSize != nil {
		s := *secondary.ServingSize
		out.ServingSize = &s
	}
	src := primary.Allergens
	if len(src) == 0 {
		src = secondary.Allergens
	}
	if len(src) > 0 {
		out.Allergens = append([]string(nil), src...)
	}
	return out
}
