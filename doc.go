// Package brandkit prepares application branding assets from source artwork.
//
// It keys near-black backgrounds out of an image and extracts the logo from
// a wide banner into a padded square icon. All work happens in memory on
// straight-alpha NRGBA buffers, so pixels that are not touched keep their
// exact channel values when re-encoded as PNG.
package brandkit
