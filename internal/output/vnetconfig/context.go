package vnetconfig

import (
	"fmt"

	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/errors"
	"github.com/olusolaa/azmgmt/pkg/atomicfile"
)

// Context is what `vnet config get` emits: the XML document plus the
// provider operation that produced it.
type Context struct {
	XMLConfiguration     string `json:"xml_configuration"`
	OperationID          string `json:"operation_id"`
	OperationDescription string `json:"operation_description"`
	OperationStatus      string `json:"operation_status"`
}

func NewContext(doc *NetworkConfiguration, op domain.OperationStatus, description string) (*Context, error) {
	text, err := Marshal(doc)
	if err != nil {
		return nil, err
	}
	return &Context{
		XMLConfiguration:     text,
		OperationID:          op.ID,
		OperationDescription: description,
		OperationStatus:      op.Status,
	}, nil
}

// ExportToFile replaces path with the XML text, all or nothing.
func (c *Context) ExportToFile(path string) error {
	if err := atomicfile.WriteFile(path, []byte(c.XMLConfiguration), 0o644); err != nil {
		return errors.WrapUserFacing(err, errors.CodeExportError,
			fmt.Sprintf("failed to export network configuration to '%s'", path),
			"Check that the directory is writable.")
	}
	return nil
}
