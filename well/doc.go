// Package well holds the well records shared by the rest of welltie: lateral
// position, depth and time markers of the studied interval, and the interval
// velocity derived from them.
//
// A Table is assembled from three source tables keyed by well name
// (coordinates + depth markers, top times, bottom times) with an inner join:
// only wells present in all three, with every field numeric, survive.
//
// The CSV readers accept the layouts exported by the interpretation
// software the tool was written against (semicolon or tab separated, optional
// decimal comma). They are convenience glue; the rest of the module only
// needs a Table.
package well
