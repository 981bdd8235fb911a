// Package effect implements the disintegration effect: a one-shot raster
// snapshot of some content is cut into a jittered grid of particles that
// drift away and fade while a left-to-right wipe hands the content area over
// from the original pixels to the particle layer.
//
// The package never draws to a screen on its own. A Host supplies the
// content and receives repaint requests; the host's frame loop calls
// Controller.Advance with the elapsed fraction of the run and
// Controller.Render to composite the current frame.
package effect
