package systems

import (
	"github.com/automoto/ingotown/components"
	cfg "github.com/automoto/ingotown/config"
	"github.com/automoto/ingotown/shared/gamemath"
	"github.com/automoto/ingotown/tags"
	"github.com/yohamta/donburi"
)

// UpdatePlayer turns held actions into velocity changes, jumps and drops.
func UpdatePlayer(w donburi.World) {
	input := getInput(w)
	if input == nil {
		return
	}
	tags.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		body := components.Body.Get(e)
		handleMovementInput(input, player, body)
		handleJumpInput(input, body)
	})
}

func handleMovementInput(input *components.InputData, player *components.PlayerData, body *gamemath.Body) {
	accel := cfg.Player.Acceleration
	player.Sprinting = GetAction(input, cfg.ActionSprint).Pressed
	if player.Sprinting {
		accel *= cfg.Player.SprintMultiplier
	}

	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		body.VX -= accel
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		body.VX += accel
	}
}

func handleJumpInput(input *components.InputData, body *gamemath.Body) {
	// Drop-through platform
	if GetAction(input, cfg.ActionDrop).JustPressed && body.DropThrough(cfg.Physics.DropNudge) {
		return
	}
	if GetAction(input, cfg.ActionJump).Pressed {
		body.Jump(cfg.Player.JumpForce)
	}
}
