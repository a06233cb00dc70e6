// Package table loads delimited text files into an in-memory Table and infers a dtype
// tag for every column.
//
// Dtype tags follow the names dataframe libraries print ("int64", "float64", "bool",
// "object") so that schemas written for those tools validate unchanged.
package table
