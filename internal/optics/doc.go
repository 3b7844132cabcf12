// Package optics is the photon scene: circular bodies, emitters that spawn
// rings of photons, and the per-frame step that moves photons, bounces them
// off bodies and absorbs or fades them out.
//
// The package knows nothing about windows or graphics. A frame loop feeds it
// input events (Scene.Dispatch), advances it (Scene.Step) and hands it a
// Canvas to draw on (Scene.Draw).
package optics
