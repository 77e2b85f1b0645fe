package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharedcode/mwmregistry"
)

// Coordinator is the registry the handlers in this package operate against.
// It must be set before the router starts serving requests.
var Coordinator *mwmregistry.Coordinator

// regionView is the JSON shape returned for a single Descriptor.
type regionView struct {
	RegionName     string `json:"regionName"`
	Version        int    `json:"version"`
	Classification string `json:"classification"`
	Status         string `json:"status"`
	LeaseCount     int    `json:"leaseCount"`
}

func toRegionView(d *mwmregistry.Descriptor) regionView {
	return regionView{
		RegionName:     d.RegionName(),
		Version:        d.Version(),
		Classification: d.Classification().String(),
		Status:         d.Status().String(),
		LeaseCount:     d.LeaseCount(),
	}
}

// GetRegions godoc
// @Summary GetRegions returns the currently registered region descriptors.
// @Schemes
// @Description GetRegions responds with the current Descriptor of every registered region as JSON.
// @Tags Regions
// @Accept json
// @Produce json
// @Success 200 {object} []regionView
// @Router /regions [get]
// @Security Bearer
func GetRegions(c *gin.Context) {
	descriptors := Coordinator.EnumerateDescriptors()
	views := make([]regionView, 0, len(descriptors))
	for _, d := range descriptors {
		views = append(views, toRegionView(d))
	}
	c.IndentedJSON(http.StatusOK, views)
}

// GetRegionByName godoc
// @Summary GetRegionByName returns the current descriptor of the named region.
// @Schemes
// @Description GetRegionByName responds with the details of the matching region as JSON.
// @Tags Regions
// @Accept json
// @Produce json
// @Param			name	path		string		true	"Name of region to fetch"    minlength(1)  maxlength(100)
// @Failure 404 {object} map[string]any
// @Success 200 {object} regionView
// @Router /regions/{name} [get]
// @Security Bearer
func GetRegionByName(c *gin.Context) {
	name := c.Param("name")

	identifier := Coordinator.LookupRegion(name)
	if !identifier.Alive() {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("region %s is not registered", name)})
		return
	}
	c.IndentedJSON(http.StatusOK, toRegionView(identifier.Descriptor()))
}

// DeregisterRegion godoc
// @Summary DeregisterRegion deregisters the named region.
// @Schemes
// @Description DeregisterRegion marks the named region for deregistration, completing immediately if no lease is outstanding.
// @Tags Regions
// @Accept json
// @Produce json
// @Param			name	path		string		true	"Name of region to deregister"    minlength(1)  maxlength(100)
// @Failure 404 {object} map[string]any
// @Success 200 {object} map[string]any
// @Router /regions/{name} [delete]
// @Security Bearer
func DeregisterRegion(c *gin.Context) {
	name := c.Param("name")

	if !Coordinator.IsLoaded(name) {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("region %s is not registered", name)})
		return
	}
	completed := Coordinator.Deregister(name)
	c.IndentedJSON(http.StatusOK, gin.H{"region": name, "completedImmediately": completed})
}
