// Package encode writes tag trees as text.
//
// The default output is SNBT, a lossless notation in which each number
// carries a suffix naming its variant:
//
//	{count:3s,name:"copygirl",pos:[I;1,64,-3],scale:1.5f,tags:["a","b"]}
//
// Compound keys are written in sorted order, so equal trees encode
// identically. Package parse reads the same notation back.
//
// Export writes the JSON or YAML view of a tree instead; those formats do
// not preserve variants.
package encode
