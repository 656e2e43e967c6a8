// Package schema defines the declarative validation schema consumed by the
// form-state controller: named fields, each carrying an ordered list of
// tagged validation rules (required, length bounds, email shape, pattern,
// numeric range). Schemas can be built programmatically with the rule
// constructors or loaded from YAML/JSON documents via Parse and LoadFS.
package schema
