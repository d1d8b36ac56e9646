package common

import "dockit/internal/model"

// FlattenedArgument is an argument with its depth in the tree, for tabular output
type FlattenedArgument struct {
	Arg    *model.Argument
	Indent int
}

// FlattenArguments walks an argument forest depth-first (parents before
// children, declaration order) and returns one row per argument
func FlattenArguments(roots []*model.Argument) []*FlattenedArgument {
	var rows []*FlattenedArgument
	for _, root := range roots {
		recursiveTraverse(root, 0, &rows)
	}
	return rows
}

func recursiveTraverse(arg *model.Argument, indent int, rows *[]*FlattenedArgument) {
	if arg == nil {
		return
	}
	*rows = append(*rows, &FlattenedArgument{Arg: arg, Indent: indent})
	for _, child := range arg.Children {
		recursiveTraverse(child, indent+1, rows)
	}
}
