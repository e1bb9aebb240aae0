// Package playback relie un lecteur (temps courant, pause, seek) à la piste
// de sous-titres : Sync garde l'index actif et pilote la navigation.
package playback

import (
	"math"
	"time"
)

// Player est le contrat minimal attendu du lecteur vidéo.
type Player interface {
	CurrentTime() float64
	Playing() bool
	// Seek place la lecture à t secondes. exact=true désactive tout
	// ajustement du lecteur (calage sur image clé, aimantation...).
	Seek(t float64, exact bool)
	// PlayWindow lit [start, end) une fois puis se met en pause.
	PlayWindow(start, end float64)
}

// Clock est un lecteur sans vidéo : une horloge qui avance en temps réel
// pendant la lecture. Utilisé par le lecteur terminal et par les tests.
// Non protégé contre les accès concurrents (boucle d'événements unique).
type Clock struct {
	now      func() time.Time
	duration float64 // 0 = pas de fin

	pos     float64   // position au moment de since
	since   time.Time // instant du dernier changement d'état
	playing bool

	windowEnd float64
	inWindow  bool

	lastExact bool
}

// NewClock crée une horloge en pause à 0. duration <= 0 signifie sans fin.
func NewClock(duration float64) *Clock {
	return NewClockWithNow(duration, time.Now)
}

// NewClockWithNow permet d'injecter la source de temps (tests).
func NewClockWithNow(duration float64, now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, duration: math.Max(duration, 0), since: now()}
}

func (c *Clock) raw() float64 {
	if !c.playing {
		return c.pos
	}
	return c.pos + c.now().Sub(c.since).Seconds()
}

// CurrentTime retourne la position, bornée par la fenêtre de relecture et la durée.
func (c *Clock) CurrentTime() float64 {
	t := c.raw()
	if c.inWindow && t > c.windowEnd {
		t = c.windowEnd
	}
	if c.duration > 0 && t > c.duration {
		t = c.duration
	}
	return t
}

func (c *Clock) Playing() bool {
	return c.playing
}

// Tick applique les arrêts (fin de fenêtre, fin de média) et retourne la position.
// À appeler à chaque échantillonnage.
func (c *Clock) Tick() float64 {
	t := c.CurrentTime()
	if !c.playing {
		return t
	}
	if c.inWindow && t >= c.windowEnd {
		c.inWindow = false
		c.pauseAt(t)
	} else if c.duration > 0 && t >= c.duration {
		c.pauseAt(t)
	}
	return t
}

func (c *Clock) pauseAt(t float64) {
	c.pos = t
	c.since = c.now()
	c.playing = false
}

func (c *Clock) Play() {
	if c.playing {
		return
	}
	if c.duration > 0 && c.pos >= c.duration {
		c.pos = 0
	}
	c.since = c.now()
	c.playing = true
}

func (c *Clock) Pause() {
	if !c.playing {
		return
	}
	c.inWindow = false
	c.pauseAt(c.CurrentTime())
}

// Toggle alterne lecture et pause ; retourne le nouvel état.
func (c *Clock) Toggle() bool {
	if c.playing {
		c.Pause()
	} else {
		c.Play()
	}
	return c.playing
}

// Seek déplace la position ; l'état lecture/pause est conservé et une
// éventuelle fenêtre de relecture est abandonnée.
func (c *Clock) Seek(t float64, exact bool) {
	c.pos = c.clamp(t)
	c.since = c.now()
	c.inWindow = false
	c.lastExact = exact
}

// SeekBy déplace la position relativement (seek non exact).
func (c *Clock) SeekBy(delta float64) {
	c.Seek(c.CurrentTime()+delta, false)
}

func (c *Clock) PlayWindow(start, end float64) {
	c.Seek(start, true)
	if end > start {
		c.windowEnd = end
		c.inWindow = true
	}
	c.since = c.now()
	c.playing = true
}

// LastSeekExact indique le mode du dernier Seek.
func (c *Clock) LastSeekExact() bool {
	return c.lastExact
}

func (c *Clock) Duration() float64 {
	return c.duration
}

func (c *Clock) clamp(t float64) float64 {
	if t < 0 {
		return 0
	}
	if c.duration > 0 && t > c.duration {
		return c.duration
	}
	return t
}
