package mapper

import (
	"github.com/samber/lo"

	"attribute-mapper/model"
)

// AttributesToMap returns the attributes that declare a From source,
// in declaration order.
func AttributesToMap(set *model.AttributeSet) []model.Attribute {
	return lo.Filter(set.Attributes(), func(a model.Attribute, _ int) bool {
		return !a.From.IsZero()
	})
}

// AttributesByRenameFrom returns the attributes with a RenameFrom source.
func AttributesByRenameFrom(set *model.AttributeSet) []model.Attribute {
	return bySourceKind(set, model.SourceRename)
}

// AttributesByCompute returns the attributes with a ComputeFrom source.
func AttributesByCompute(set *model.AttributeSet) []model.Attribute {
	return bySourceKind(set, model.SourceCompute)
}

func bySourceKind(set *model.AttributeSet, kind model.SourceKind) []model.Attribute {
	return lo.Filter(AttributesToMap(set), func(a model.Attribute, _ int) bool {
		return a.From.Kind() == kind
	})
}
