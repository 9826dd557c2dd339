package processors

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/confirmdesk/backend/src/models"
)

var teamDisplayNames = map[string]string{
	"costManagement":       "Cost Management Team",
	"networkManagement":    "Network Management Team",
	"referenceData":        "Reference Data Team",
	"collateralManagement": "Collateral Management Team",
	"confirmations":        "Confirmations Team",
	"settlements":          "Settlements Team",
	"regulatoryAdherence":  "Regulatory Adherence Team",
	"middleOffice":         "Middle Office Team",
}

// lifecycleProcessorImpl implements the LifecycleProcessor interface.
type lifecycleProcessorImpl struct{}

// NewLifecycleProcessor creates a new instance of LifecycleProcessor.
func NewLifecycleProcessor() LifecycleProcessor {
	return &lifecycleProcessorImpl{}
}

// teamState is a status/data/notes triple before display names and
// timestamps are attached.
type teamState struct {
	status string
	data   map[string]string
	notes  string
}

// Build derives one lifecycle per trade from its effective status. Synthetic
// data values (cost, collateral) come from the trade-ID hash so rebuilding
// the same collection yields the same lifecycles.
func (p *lifecycleProcessorImpl) Build(trades []models.Trade, now time.Time) []models.TradeLifecycle {
	timestamp := now.Format(time.RFC3339)
	lifecycles := make([]models.TradeLifecycle, 0, len(trades))
	for _, trade := range trades {
		states := teamStates(trade)
		teams := make(map[string]models.TeamData, len(models.LifecycleTeams))
		for _, team := range models.LifecycleTeams {
			state := states[team]
			teams[team] = models.TeamData{
				TeamName:    teamDisplayNames[team],
				Status:      state.status,
				LastUpdated: timestamp,
				Data:        state.data,
				Notes:       state.notes,
			}
		}
		lifecycles = append(lifecycles, models.TradeLifecycle{
			TradeID:      trade.ID(),
			CurrentStage: currentStage(teams),
			Teams:        teams,
			CreatedAt:    timestamp,
			LastModified: timestamp,
		})
	}
	return lifecycles
}

// ApplyUpdate returns a new slice with one team's entry replaced. The input
// is never mutated; the collection is copy-on-write like the trade list.
func (p *lifecycleProcessorImpl) ApplyUpdate(lifecycles []models.TradeLifecycle, update models.TeamUpdate, now time.Time) []models.TradeLifecycle {
	timestamp := now.Format(time.RFC3339)
	updated := make([]models.TradeLifecycle, len(lifecycles))
	for i, lifecycle := range lifecycles {
		if lifecycle.TradeID != update.TradeID {
			updated[i] = lifecycle
			continue
		}

		teams := make(map[string]models.TeamData, len(lifecycle.Teams))
		for team, data := range lifecycle.Teams {
			teams[team] = data
		}
		if current, ok := teams[update.TeamName]; ok {
			merged := make(map[string]string, len(current.Data)+len(update.Data))
			for k, v := range current.Data {
				merged[k] = v
			}
			for k, v := range update.Data {
				merged[k] = v
			}
			current.Status = update.Status
			current.Data = merged
			current.Notes = update.Notes
			current.LastUpdated = timestamp
			teams[update.TeamName] = current
		}

		lifecycle.Teams = teams
		lifecycle.CurrentStage = currentStage(teams)
		lifecycle.LastModified = timestamp
		updated[i] = lifecycle
	}
	return updated
}

// currentStage is the display name of the most advanced completed team.
func currentStage(teams map[string]models.TeamData) string {
	for i := len(models.LifecycleTeams) - 1; i >= 0; i-- {
		team := models.LifecycleTeams[i]
		if teams[team].Status == models.TeamStatusCompleted {
			return teamDisplayNames[team]
		}
	}
	return teamDisplayNames["costManagement"]
}

func teamStates(trade models.Trade) map[string]teamState {
	id := trade.ID()
	hash := 0
	for _, r := range id {
		hash += int(r)
	}
	cost := fmt.Sprintf("%d.00", hash%1000)
	collateral := fmt.Sprintf("%d.00", hash%5000)
	networkID := "NET-" + id

	switch strings.ToLower(trade.EffectiveStatus()) {
	case "settled":
		return map[string]teamState{
			"costManagement":       {models.TeamStatusCompleted, map[string]string{"cost": cost}, "Cost analysis completed"},
			"networkManagement":    {models.TeamStatusCompleted, map[string]string{"networkId": networkID}, "Network routing established"},
			"referenceData":        {models.TeamStatusCompleted, map[string]string{"validated": "true"}, "Reference data validated"},
			"collateralManagement": {models.TeamStatusCompleted, map[string]string{"collateral": collateral}, "Collateral requirements met"},
			"confirmations":        {models.TeamStatusCompleted, map[string]string{"tradeId": id}, "Trade confirmed successfully"},
			"settlements":          {models.TeamStatusCompleted, map[string]string{"settled": "true"}, "Settlement completed"},
			"regulatoryAdherence":  {models.TeamStatusCompleted, map[string]string{"compliant": "true"}, "Regulatory requirements met"},
			"middleOffice":         {models.TeamStatusCompleted, map[string]string{"processed": "true"}, "Middle office processing complete"},
		}
	case "confirmed":
		return map[string]teamState{
			"costManagement":       {models.TeamStatusCompleted, map[string]string{"cost": cost}, "Cost analysis completed"},
			"networkManagement":    {models.TeamStatusCompleted, map[string]string{"networkId": networkID}, "Network routing established"},
			"referenceData":        {models.TeamStatusCompleted, map[string]string{"validated": "true"}, "Reference data validated"},
			"collateralManagement": {models.TeamStatusCompleted, map[string]string{"collateral": collateral}, "Collateral requirements met"},
			"confirmations":        {models.TeamStatusCompleted, map[string]string{"tradeId": id}, "Trade confirmed successfully"},
			"settlements":          {models.TeamStatusInProgress, map[string]string{"pending": "true"}, "Awaiting settlement"},
			"regulatoryAdherence":  {models.TeamStatusInProgress, map[string]string{"reviewing": "true"}, "Regulatory review in progress"},
			"middleOffice":         {models.TeamStatusPending, map[string]string{}, "Awaiting confirmation completion"},
		}
	case "pending":
		return map[string]teamState{
			"costManagement":       {models.TeamStatusCompleted, map[string]string{"cost": cost}, "Cost analysis completed"},
			"networkManagement":    {models.TeamStatusCompleted, map[string]string{"networkId": networkID}, "Network routing established"},
			"referenceData":        {models.TeamStatusCompleted, map[string]string{"validated": "true"}, "Reference data validated"},
			"collateralManagement": {models.TeamStatusInProgress, map[string]string{"reviewing": "true"}, "Collateral review in progress"},
			"confirmations":        {models.TeamStatusInProgress, map[string]string{"tradeId": id}, "Awaiting confirmation"},
			"settlements":          {models.TeamStatusPending, map[string]string{}, "Awaiting confirmation"},
			"regulatoryAdherence":  {models.TeamStatusPending, map[string]string{}, "Awaiting confirmation"},
			"middleOffice":         {models.TeamStatusPending, map[string]string{}, "Awaiting confirmation"},
		}
	case "failed", "disputed":
		return map[string]teamState{
			"costManagement":       {models.TeamStatusCompleted, map[string]string{"cost": cost}, "Cost analysis completed"},
			"networkManagement":    {models.TeamStatusCompleted, map[string]string{"networkId": networkID}, "Network routing established"},
			"referenceData":        {models.TeamStatusCompleted, map[string]string{"validated": "true"}, "Reference data validated"},
			"collateralManagement": {models.TeamStatusFailed, map[string]string{"issue": "Collateral insufficient"}, "Collateral requirements not met"},
			"confirmations":        {models.TeamStatusFailed, map[string]string{"tradeId": id}, "Confirmation failed - requires resolution"},
			"settlements":          {models.TeamStatusPending, map[string]string{}, "On hold pending confirmation"},
			"regulatoryAdherence":  {models.TeamStatusPending, map[string]string{}, "On hold pending confirmation"},
			"middleOffice":         {models.TeamStatusPending, map[string]string{}, "On hold pending confirmation"},
		}
	default:
		return map[string]teamState{
			"costManagement":       {models.TeamStatusInProgress, map[string]string{}, "Processing cost analysis"},
			"networkManagement":    {models.TeamStatusPending, map[string]string{}, "Awaiting cost management"},
			"referenceData":        {models.TeamStatusPending, map[string]string{}, "Awaiting network setup"},
			"collateralManagement": {models.TeamStatusPending, map[string]string{}, "Awaiting reference data"},
			"confirmations":        {models.TeamStatusPending, map[string]string{"tradeId": id}, "Awaiting upstream teams"},
			"settlements":          {models.TeamStatusPending, map[string]string{}, "Awaiting confirmation"},
			"regulatoryAdherence":  {models.TeamStatusPending, map[string]string{}, "Awaiting confirmation"},
			"middleOffice":         {models.TeamStatusPending, map[string]string{}, "Awaiting confirmation"},
		}
	}
}
