package sink

// SinkType names a sink implementation
type SinkType string

const (
	SinkTypeMemory SinkType = "memory"
	SinkTypeSQLite SinkType = "sqlite"
)

func (t SinkType) String() string {
	return string(t)
}

func (t SinkType) IsValid() bool {
	switch t {
	case SinkTypeMemory, SinkTypeSQLite:
		return true
	}
	return false
}

// Config is the JSON sink description, e.g.
// {"db_type": "sqlite", "extra_details": {"path": "recipes.db"}}
type Config struct {
	DbType       SinkType               `json:"db_type"`
	ExtraDetails map[string]interface{} `json:"extra_details"`
}
