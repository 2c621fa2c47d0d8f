package config

import "github.com/yohamta/donburi/ecs"

// Default is the layer every entity and renderer lives on. A single-scene
// fight has no use for layer separation yet.
const Default = ecs.LayerDefault
