package config

import "sort"

// ValueType is the type an overridable option is parsed into.
type ValueType int

const (
	TypeBool ValueType = iota
	TypeInt
	TypeString
	TypeEnum
	TypeStringList
)

// String returns the string representation of ValueType.
func (t ValueType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeString:
		return "string"
	case TypeEnum:
		return "enum"
	case TypeStringList:
		return "list"
	default:
		return "unknown"
	}
}

// PropertySchema documents one overridable property.
type PropertySchema struct {
	Key           string    // Property name (e.g., "courgette.threads")
	Type          ValueType // Expected value type
	AllowedValues []string  // Valid values for enum types (empty for non-enums)
	Description   string    // Human-readable description for help text
}

// KnownProperties is the registry of every property the resolver consults.
var KnownProperties = map[string]PropertySchema{
	PropThreads: {
		Key:         PropThreads,
		Type:        TypeInt,
		Description: "Number of concurrent workers",
	},
	PropRunLevel: {
		Key:           PropRunLevel,
		Type:          TypeEnum,
		AllowedValues: []string{string(RunLevelFeature), string(RunLevelScenario)},
		Description:   "Unit of parallel work",
	},
	PropRerunFailedScenarios: {
		Key:         PropRerunFailedScenarios,
		Type:        TypeBool,
		Description: "Rerun failed scenarios after the first pass",
	},
	PropRerunAttempts: {
		Key:         PropRerunAttempts,
		Type:        TypeInt,
		Description: "Maximum rerun attempts per failed scenario",
	},
	PropShowTestOutput: {
		Key:         PropShowTestOutput,
		Type:        TypeBool,
		Description: "Forward worker output to the console",
	},
	PropReportTitle: {
		Key:         PropReportTitle,
		Type:        TypeString,
		Description: "Title of the aggregated report",
	},
	PropReportTargetDir: {
		Key:         PropReportTargetDir,
		Type:        TypeString,
		Description: "Directory receiving aggregated reports and the aggregate rerun file",
	},
	PropFeatures: {
		Key:         PropFeatures,
		Type:        TypeStringList,
		Description: "Feature paths for the whole suite",
	},
	PropGlue: {
		Key:         PropGlue,
		Type:        TypeStringList,
		Description: "Glue paths passed to the engine",
	},
	PropExtraGlue: {
		Key:         PropExtraGlue,
		Type:        TypeStringList,
		Description: "Additional glue paths passed to the engine",
	},
	PropTags: {
		Key:         PropTags,
		Type:        TypeStringList,
		Description: "Tag expressions passed to the engine",
	},
	PropPlugin: {
		Key:         PropPlugin,
		Type:        TypeStringList,
		Description: "Engine plugin specs (kind:destination)",
	},
	PropName: {
		Key:         PropName,
		Type:        TypeStringList,
		Description: "Scenario name filters passed to the engine",
	},
}

// ErrUnknownProperty is returned when asking for a property the resolver never reads.
type ErrUnknownProperty struct {
	Key string
}

func (e ErrUnknownProperty) Error() string {
	return "unknown property: " + e.Key
}

// GetPropertySchema returns the schema for a known property.
func GetPropertySchema(key string) (PropertySchema, error) {
	schema, ok := KnownProperties[key]
	if !ok {
		return PropertySchema{}, ErrUnknownProperty{Key: key}
	}
	return schema, nil
}

// SortedProperties returns the registry ordered by key.
func SortedProperties() []PropertySchema {
	out := make([]PropertySchema, 0, len(KnownProperties))
	for _, s := range KnownProperties {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
