package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
)

type InputSystem struct {
	debug bool
}

func NewInputSystem(debug bool) *InputSystem {
	return &InputSystem{debug: debug}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	const stickDeadzone = 0.2

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)

	moveX, moveY := 0.0, 0.0
	if left {
		moveX -= 1
	}
	if right {
		moveX += 1
	}
	if down {
		moveY -= 1
	}
	if up {
		moveY += 1
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			moveX = leftX
		}
		// Gamepad y grows downward.
		leftY := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(leftY) > stickDeadzone {
			moveY = -leftY
		}
		jumpPressed = jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}

	restart, scoreUp, die := false, false, false
	if i.debug {
		restart = inpututil.IsKeyJustPressed(ebiten.KeyNumpad0)
		scoreUp = inpututil.IsKeyJustPressed(ebiten.KeyNumpad1)
		die = inpututil.IsKeyJustPressed(ebiten.KeyNumpad2)
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.MoveX = moveX
		input.MoveY = moveY
		input.JumpPressed = jumpPressed
		input.DebugRestart = restart
		input.DebugScoreUp = scoreUp
		input.DebugDie = die
	})
}
