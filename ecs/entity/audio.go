package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/climber/assets"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/sfx"
)

// NewSoundBank synthesizes every clip once and keeps the players on a
// pinned entity so restarts do not rebuild them.
func NewSoundBank(w *ecs.World, clips []sfx.Clip) (ecs.Entity, error) {
	return newSoundBank(w, clips, assets.NewPlayerFromPCM)
}

func newSoundBank(w *ecs.World, clips []sfx.Clip, newPlayer func([]byte) *audio.Player) (ecs.Entity, error) {
	audioComp, err := buildAudioComponent(clips, newPlayer)
	if err != nil {
		return 0, err
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.AudioComponent.Kind(), audioComp); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("sound bank: add audio: %w", err)
	}
	if err := ecs.Add(w, e, component.PersistentComponent.Kind(), &component.Persistent{ID: "sounds", KeepOnReload: true, Pinned: true}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("sound bank: add persistent: %w", err)
	}
	return e, nil
}

func buildAudioComponent(clips []sfx.Clip, newPlayer func([]byte) *audio.Player) (*component.Audio, error) {
	n := len(clips)
	names := make([]string, 0, n)
	players := make([]*audio.Player, 0, n)
	volume := make([]float64, 0, n)
	play := make([]bool, 0, n)
	stop := make([]bool, 0, n)

	for i, clip := range clips {
		pcm, err := sfx.Render(clip, assets.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("audio clip %d (%q): %w", i, clip.Name, err)
		}
		names = append(names, clip.Name)
		players = append(players, newPlayer(pcm))
		// The clip volume is baked into the samples.
		volume = append(volume, 1)
		play = append(play, false)
		stop = append(stop, false)
	}

	return &component.Audio{
		Names:   names,
		Players: players,
		Volume:  volume,
		Play:    play,
		Stop:    stop,
	}, nil
}
