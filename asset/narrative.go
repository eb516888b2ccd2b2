package asset

// DefaultNarrativeScript is the embedded stage script used when no script path is configured
const DefaultNarrativeScript = `
[timing]
reveal_animation = "1s"
reveal_hold = "2s"
explosion_delay = "3s"
message_hold = "4.5s"

[[screen]]
stage = "Intro"
title = "✦ starlock ✦"
subtitle = "something is hidden among the stars"
hint = "press u to unlock"

[[screen]]
stage = "MainMenu"
title = "The Universe Awaits"
body = [
    "Drag to drift through the field.",
    "Scroll or pinch to zoom.",
    "Zoom far enough out and look closely.",
]
hint = "enter to begin"

[[screen]]
stage = "UniverseExploration"
title = ""
hint = "drag · scroll · pinch    q to quit"

[[screen]]
stage = "HeartReveal"
title = ""

[[screen]]
stage = "Message"
title = "Out of every star in the sky"
body = [
    "the brightest one was always you.",
]
hint = "tap to continue"

[[screen]]
stage = "Final"
title = "♥"
body = [
    "Thank you for finding it.",
]
hint = "q to quit"
`
