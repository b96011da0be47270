package profile

import (
	"sync"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/easeaico/companion-web/internal/types"
)

var companionSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.For[types.CompanionProfile](nil)
})

// Schema returns the JSON Schema of a stored companion profile.
func Schema() (*jsonschema.Schema, error) {
	return companionSchema()
}
