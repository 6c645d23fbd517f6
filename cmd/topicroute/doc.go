// Command topicroute routes a research topic to a hosted model
// endpoint and prints the decision as JSON.
//
// Usage:
//
//	topicroute route --topic "Tiananmen Square protest art"
//	topicroute route --topic "Blender metaball cluster" --directive "switch to western model"
//	topicroute models
//	topicroute version
package main
