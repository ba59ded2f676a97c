// Package metadata groups the readers that extract capture metadata from
// media files: exifmeta for still images and quicktime for video containers.
package metadata
