// Package scan lists a single photos directory and classifies each entry by
// its filename shape.
//
// Three shapes are recognized: plain images (IMG_NNNN.jpg), edited images
// (IMG_ENNNN.jpg), and videos (IMG_NNNN.mov). Only the extension is compared
// case-insensitively, and it is folded in a separate step before the stem is
// matched. The whole name must match; names with trailing characters after a
// valid extension are ignored.
package scan
