// Package scenefile reads scene graphs from a YAML description.
//
// The format mirrors the scene package one to one and is meant for
// fixtures and tooling, not for shipping animations:
//
//	root: 1
//	timeStretch: repeat
//	duration: 360
//	compositions:
//	  - id: 1
//	    duration: 150
//	    frameRate: 30
//	    audio: {data: clip, duration: 5s}
//	    layers:
//	      - id: 1
//	        solid: {color: tomato, width: 100, height: 100}
//	        transform:
//	          opacity:
//	            keyframes:
//	              - {time: [10, 20], value: [0, 1]}
//
// Every animatable field takes either a plain value or a mapping with a
// keyframes list. Points are [x, y] pairs and colors are SVG names or
// #rrggbb strings. Omitted transform components take their identity
// values and a layer without a duration lasts until the end of its
// composition.
//
// Input may be zstd compressed; Decode detects the frame magic.
package scenefile
